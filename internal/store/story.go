// Package store provides database access methods for all storyhub entities.
// Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"storyhub/internal/models"
)

// storyColumns is the SELECT list shared by every story query.
const storyColumns = `id, category, slides, owner_id, likes, liked_by, created_at, updated_at`

// StoryStore handles all story-related database operations, including the
// atomic like toggle.
type StoryStore struct {
	db *sql.DB
}

// NewStoryStore creates a new StoryStore with the given database connection.
func NewStoryStore(db *sql.DB) *StoryStore {
	return &StoryStore{db: db}
}

// Create inserts a new story with zero likes and an empty liker set.
// Slide validation happens at the handler boundary; the store persists
// whatever it is given.
func (s *StoryStore) Create(ownerID uuid.UUID, category models.Category, slides []models.Slide) (*models.Story, error) {
	payload, err := json.Marshal(slides)
	if err != nil {
		return nil, fmt.Errorf("marshal slides: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO stories (category, slides, owner_id)
		VALUES ($1, $2, $3)
		RETURNING `+storyColumns,
		category, payload, ownerID)

	story, err := scanStory(row)
	if err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}
	return story, nil
}

// FindByID retrieves a story by its UUID. Returns nil if not found.
func (s *StoryStore) FindByID(id uuid.UUID) (*models.Story, error) {
	row := s.db.QueryRow(`SELECT `+storyColumns+` FROM stories WHERE id = $1`, id)

	story, err := scanStory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find story by id: %w", err)
	}
	return story, nil
}

// ListByCategory returns stories in a category in stable creation order.
// CategoryAll (or an empty category) returns every story.
func (s *StoryStore) ListByCategory(category models.Category) ([]models.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM stories ORDER BY created_at, id`
	args := []any{}
	if category != "" && category != models.CategoryAll {
		query = `SELECT ` + storyColumns + ` FROM stories WHERE category = $1 ORDER BY created_at, id`
		args = append(args, category)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stories by category: %w", err)
	}
	defer rows.Close()

	return collectStories(rows)
}

// ListByOwner returns all stories created by the given user in creation order.
func (s *StoryStore) ListByOwner(ownerID uuid.UUID) ([]models.Story, error) {
	rows, err := s.db.Query(`
		SELECT `+storyColumns+` FROM stories
		WHERE owner_id = $1
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list stories by owner: %w", err)
	}
	defer rows.Close()

	return collectStories(rows)
}

// Update replaces a story's category and slide list. Ownership and payload
// checks happen at the handler boundary. Returns nil if the story does not
// exist. Likes and liked_by are untouched.
func (s *StoryStore) Update(id uuid.UUID, category models.Category, slides []models.Slide) (*models.Story, error) {
	payload, err := json.Marshal(slides)
	if err != nil {
		return nil, fmt.Errorf("marshal slides: %w", err)
	}

	row := s.db.QueryRow(`
		UPDATE stories
		SET category = $2, slides = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+storyColumns,
		id, category, payload)

	story, err := scanStory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update story: %w", err)
	}
	return story, nil
}

// ToggleLike flips the user's membership in the story's liker set and
// recomputes the like count, all in one conditional UPDATE. Concurrent
// toggles on the same story serialize on the row, so likes can never drift
// from liked_by. Returns nil if the story does not exist.
func (s *StoryStore) ToggleLike(id, userID uuid.UUID) (*models.Story, error) {
	// Both SET expressions evaluate against the pre-update row, so the CASE
	// is computed twice from the same old liked_by value.
	row := s.db.QueryRow(`
		UPDATE stories
		SET liked_by = CASE WHEN liked_by ? $2::text
		        THEN liked_by - $2::text
		        ELSE liked_by || to_jsonb($2::text) END,
		    likes = jsonb_array_length(CASE WHEN liked_by ? $2::text
		        THEN liked_by - $2::text
		        ELSE liked_by || to_jsonb($2::text) END),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+storyColumns,
		id, userID.String())

	story, err := scanStory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	return story, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanStory reads one story row, decoding the slides and liked_by JSONB
// columns into their typed forms.
func scanStory(row rowScanner) (*models.Story, error) {
	var (
		story      models.Story
		rawSlides  []byte
		rawLikedBy []byte
	)

	err := row.Scan(
		&story.ID, &story.Category, &rawSlides, &story.OwnerID,
		&story.Likes, &rawLikedBy, &story.CreatedAt, &story.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rawSlides, &story.Slides); err != nil {
		return nil, fmt.Errorf("decode slides: %w", err)
	}
	if err := json.Unmarshal(rawLikedBy, &story.LikedBy); err != nil {
		return nil, fmt.Errorf("decode liked_by: %w", err)
	}
	return &story, nil
}

// collectStories drains a result set into a slice.
func collectStories(rows *sql.Rows) ([]models.Story, error) {
	var stories []models.Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		stories = append(stories, *story)
	}
	return stories, rows.Err()
}
