// store_test.go provides shared test infrastructure for store integration
// tests. Tests are skipped when PostgreSQL is unavailable.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"storyhub/internal/database"
	"storyhub/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "storyhub")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "storyhub")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a throwaway user and registers cleanup. Deleting the
// user cascades to their stories and bookmarks.
func testUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()

	users := NewUserStore(db)
	u, err := users.Create("test-"+uuid.NewString()[:8], "password")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM users WHERE id = $1", u.ID)
	})
	return u
}

// testSlides builds n complete slides.
func testSlides(n int) []models.Slide {
	slides := make([]models.Slide, n)
	for i := range slides {
		slides[i] = models.Slide{
			Heading:     "Heading",
			Description: "Description",
			MediaURL:    "https://example.com/media.jpg",
		}
	}
	return slides
}

// testStory creates a story owned by the given user and registers cleanup.
func testStory(t *testing.T, db *sql.DB, owner *models.User, category models.Category) *models.Story {
	t.Helper()

	stories := NewStoryStore(db)
	story, err := stories.Create(owner.ID, category, testSlides(3))
	if err != nil {
		t.Fatalf("create test story: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM stories WHERE id = $1", story.ID)
	})
	return story
}
