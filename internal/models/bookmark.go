package models

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a (user, story) "saved for later" record. At most one exists
// per pair — enforced by a unique index and checked again at insert time.
// Bookmarks are created and deleted, never updated in place.
type Bookmark struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	StoryID   uuid.UUID `json:"storyId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookmarkWithStory is a bookmark with its story resolved inline, so list
// callers never need a second round trip for story detail.
type BookmarkWithStory struct {
	Bookmark
	Story Story `json:"story"`
}
