package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// seedSlide mirrors the slide JSON shape stored in stories.slides.
type seedSlide struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	MediaURL    string `json:"mediaUrl"`
}

// Seed populates the database with initial development data: a demo user
// and one story per category, so the public listing has content to show.
// It is a no-op if any users already exist.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	var ownerID string
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, "demo", string(hash)).Scan(&ownerID)
	if err != nil {
		return fmt.Errorf("seed insert demo user: %w", err)
	}

	categories := []string{"Food", "Health and Fitness", "Travel", "Movie", "Education"}
	for _, category := range categories {
		slides := make([]seedSlide, 3)
		for i := range slides {
			slides[i] = seedSlide{
				Heading:     fmt.Sprintf("%s story, slide %d", category, i+1),
				Description: fmt.Sprintf("Sample %s content for development.", category),
				MediaURL:    fmt.Sprintf("https://picsum.photos/seed/%s-%d/400/600", category, i+1),
			}
		}

		payload, err := json.Marshal(slides)
		if err != nil {
			return fmt.Errorf("seed marshal slides: %w", err)
		}

		if _, err := db.Exec(`
			INSERT INTO stories (category, slides, owner_id)
			VALUES ($1, $2, $3)
		`, category, payload, ownerID); err != nil {
			return fmt.Errorf("seed insert story: %w", err)
		}
	}

	slog.Info("database seeded with demo user and sample stories",
		"username", "demo",
		"password", "demo",
		"stories", len(categories),
	)

	return nil
}
