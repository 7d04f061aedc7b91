package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"storyhub/internal/middleware"
	"storyhub/internal/models"
	"storyhub/internal/store"
)

// Bookmarks serves the explicit save/unsave endpoints. Unlike the like
// toggle, adding a bookmark twice is an error, not a flip.
type Bookmarks struct {
	bookmarks *store.BookmarkStore
}

func NewBookmarks(bookmarks *store.BookmarkStore) *Bookmarks {
	return &Bookmarks{bookmarks: bookmarks}
}

type bookmarkRequest struct {
	StoryID string `json:"storyId"`
}

// Add handles POST /bookmarks for the authenticated subject.
func (h *Bookmarks) Add(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromCtx(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req bookmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	storyID, err := uuid.Parse(req.StoryID)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Story not found.")
		return
	}

	bookmark, err := h.bookmarks.Create(subject, storyID)
	switch {
	case errors.Is(err, store.ErrDuplicateBookmark):
		respondMessage(w, http.StatusConflict, "Bookmark already exists.")
		return
	case errors.Is(err, store.ErrStoryNotFound):
		respondMessage(w, http.StatusNotFound, "Story not found.")
		return
	case err != nil:
		respondInternal(w, "create bookmark failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, bookmark)
}

// Remove handles DELETE /bookmarks for the authenticated subject.
func (h *Bookmarks) Remove(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromCtx(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req bookmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	storyID, err := uuid.Parse(req.StoryID)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Bookmark not found.")
		return
	}

	deleted, err := h.bookmarks.Delete(subject, storyID)
	if err != nil {
		respondInternal(w, "delete bookmark failed", err)
		return
	}
	if !deleted {
		respondMessage(w, http.StatusNotFound, "Bookmark not found.")
		return
	}
	respondMessage(w, http.StatusOK, "Bookmark removed successfully.")
}

// ListByUser handles GET /bookmarks/user/{userId}: the user's bookmarks
// with each referenced story resolved inline.
func (h *Bookmarks) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	bookmarks, err := h.bookmarks.ListByUser(userID)
	if err != nil {
		respondInternal(w, "list bookmarks failed", err)
		return
	}
	if bookmarks == nil {
		bookmarks = []models.BookmarkWithStory{}
	}
	respondJSON(w, http.StatusOK, bookmarks)
}
