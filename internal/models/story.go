// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is the fixed set of story categories. Stories always carry one
// of the concrete categories; CategoryAll exists only as a query filter and
// is never stored.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryHealth    Category = "Health and Fitness"
	CategoryTravel    Category = "Travel"
	CategoryMovie     Category = "Movie"
	CategoryEducation Category = "Education"

	// CategoryAll matches every story in list queries. Not a storable value.
	CategoryAll Category = "All"
)

// Categories lists every storable category, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryHealth,
	CategoryTravel,
	CategoryMovie,
	CategoryEducation,
}

// Valid returns true if c is a storable category (CategoryAll is not).
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Slide limits. A story must carry between MinSlides and MaxSlides complete
// slides.
const (
	MinSlides = 3
	MaxSlides = 6
)

// Slide is one heading/description/media-URL triple within a story.
// Media is referenced by URL only — the server never fetches or stores it.
type Slide struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	MediaURL    string `json:"mediaUrl"`
}

// Story is a user-authored unit of content: an ordered sequence of slides
// plus category, ownership, and like metadata. LikedBy is the source of
// truth for Likes — the two are written together in a single statement and
// a database CHECK keeps them equal.
type Story struct {
	ID        uuid.UUID   `json:"id"`
	Category  Category    `json:"category"`
	Slides    []Slide     `json:"slides"`
	OwnerID   uuid.UUID   `json:"userId"`
	Likes     int         `json:"likes"`
	LikedBy   []uuid.UUID `json:"likedBy"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// LikedByUser returns true if the given user is in the story's liker set.
func (s *Story) LikedByUser(userID uuid.UUID) bool {
	for _, id := range s.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
