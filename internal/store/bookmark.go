package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"storyhub/internal/models"
)

// BookmarkStore handles all bookmark-related database operations.
type BookmarkStore struct {
	db *sql.DB
}

// NewBookmarkStore creates a new BookmarkStore with the given database connection.
func NewBookmarkStore(db *sql.DB) *BookmarkStore {
	return &BookmarkStore{db: db}
}

// Create inserts a bookmark for the (user, story) pair. The uniqueness
// check and the insert are one statement, so a double-click can never
// produce two rows. Returns ErrDuplicateBookmark if the pair is already
// bookmarked and ErrStoryNotFound if the story does not exist.
func (s *BookmarkStore) Create(userID, storyID uuid.UUID) (*models.Bookmark, error) {
	b := &models.Bookmark{}
	err := s.db.QueryRow(`
		INSERT INTO bookmarks (user_id, story_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, story_id) DO NOTHING
		RETURNING id, user_id, story_id, created_at, updated_at
	`, userID, storyID).Scan(
		&b.ID, &b.UserID, &b.StoryID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		// ON CONFLICT DO NOTHING returned no row — the pair already exists.
		return nil, ErrDuplicateBookmark
	}
	if pgErrCode(err) == pgForeignKeyViolation {
		return nil, ErrStoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("create bookmark: %w", err)
	}
	return b, nil
}

// Delete removes the bookmark for the (user, story) pair. Returns false if
// no such bookmark existed.
func (s *BookmarkStore) Delete(userID, storyID uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM bookmarks WHERE user_id = $1 AND story_id = $2
	`, userID, storyID)
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete bookmark rows: %w", err)
	}
	return n > 0, nil
}

// ListByUser returns the user's bookmarks with each story resolved inline,
// oldest first.
func (s *BookmarkStore) ListByUser(userID uuid.UUID) ([]models.BookmarkWithStory, error) {
	rows, err := s.db.Query(`
		SELECT b.id, b.user_id, b.story_id, b.created_at, b.updated_at,
		       s.id, s.category, s.slides, s.owner_id, s.likes, s.liked_by, s.created_at, s.updated_at
		FROM bookmarks b
		JOIN stories s ON s.id = b.story_id
		WHERE b.user_id = $1
		ORDER BY b.created_at, b.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	var items []models.BookmarkWithStory
	for rows.Next() {
		var (
			item       models.BookmarkWithStory
			rawSlides  []byte
			rawLikedBy []byte
		)
		err := rows.Scan(
			&item.ID, &item.UserID, &item.StoryID, &item.CreatedAt, &item.UpdatedAt,
			&item.Story.ID, &item.Story.Category, &rawSlides, &item.Story.OwnerID,
			&item.Story.Likes, &rawLikedBy, &item.Story.CreatedAt, &item.Story.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		if err := json.Unmarshal(rawSlides, &item.Story.Slides); err != nil {
			return nil, fmt.Errorf("decode slides: %w", err)
		}
		if err := json.Unmarshal(rawLikedBy, &item.Story.LikedBy); err != nil {
			return nil, fmt.Errorf("decode liked_by: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CountByUser returns how many bookmarks the user holds.
func (s *BookmarkStore) CountByUser(userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM bookmarks WHERE user_id = $1
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return count, nil
}
