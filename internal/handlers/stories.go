package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"storyhub/internal/cache"
	"storyhub/internal/middleware"
	"storyhub/internal/models"
	"storyhub/internal/store"
)

// Stories serves the story endpoints. Category list responses pass through
// the Valkey cache; every write invalidates the affected lists.
type Stories struct {
	stories *store.StoryStore
	cache   *cache.StoryListCache
}

func NewStories(stories *store.StoryStore, listCache *cache.StoryListCache) *Stories {
	return &Stories{stories: stories, cache: listCache}
}

type storyRequest struct {
	Category models.Category `json:"category"`
	Slides   []models.Slide  `json:"slides"`
}

// Create handles POST /stories. The owner is the authenticated subject.
func (h *Stories) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.SubjectFromCtx(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req storyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateStory(req.Category, req.Slides); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	story, err := h.stories.Create(ownerID, req.Category, req.Slides)
	if err != nil {
		respondInternal(w, "create story failed", err)
		return
	}
	h.cache.Invalidate(r.Context(), story.Category)
	respondJSON(w, http.StatusCreated, story)
}

// List handles GET /stories?category=…. An empty or "All" filter returns
// every story; an unknown category simply matches nothing.
func (h *Stories) List(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.URL.Query().Get("category"))

	if body, ok := h.cache.Get(r.Context(), category); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	}

	stories, err := h.stories.ListByCategory(category)
	if err != nil {
		respondInternal(w, "list stories failed", err)
		return
	}
	if stories == nil {
		stories = []models.Story{}
	}

	body, err := json.Marshal(stories)
	if err != nil {
		respondInternal(w, "encode stories failed", err)
		return
	}
	h.cache.Set(r.Context(), category, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Get handles GET /stories/{id}.
func (h *Stories) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Story not found.")
		return
	}

	story, err := h.stories.FindByID(id)
	if err != nil {
		respondInternal(w, "find story failed", err)
		return
	}
	if story == nil {
		respondMessage(w, http.StatusNotFound, "Story not found.")
		return
	}
	respondJSON(w, http.StatusOK, story)
}

// ListByUser handles GET /stories/user/{userId}: the stories a user owns.
func (h *Stories) ListByUser(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	stories, err := h.stories.ListByOwner(ownerID)
	if err != nil {
		respondInternal(w, "list stories by owner failed", err)
		return
	}
	if stories == nil {
		stories = []models.Story{}
	}
	respondJSON(w, http.StatusOK, stories)
}

// Update handles PUT /stories/{id}. Only the owner may edit a story, and
// the edit never touches likes or likedBy.
func (h *Stories) Update(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromCtx(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Story not found.")
		return
	}

	var req storyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateStory(req.Category, req.Slides); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := h.stories.FindByID(id)
	if err != nil {
		respondInternal(w, "find story failed", err)
		return
	}
	if existing == nil {
		respondMessage(w, http.StatusNotFound, "Story not found.")
		return
	}
	if existing.OwnerID != subject {
		respondMessage(w, http.StatusForbidden, "You can only edit your own stories.")
		return
	}

	story, err := h.stories.Update(id, req.Category, req.Slides)
	if err != nil {
		respondInternal(w, "update story failed", err)
		return
	}
	if story == nil {
		respondMessage(w, http.StatusNotFound, "Story not found.")
		return
	}
	// The category may have changed, so both old and new lists are stale.
	h.cache.InvalidateAll(r.Context())
	respondJSON(w, http.StatusOK, story)
}

type likeRequest struct {
	StoryID string `json:"storyId"`
}

type likeResponse struct {
	Likes   int         `json:"likes"`
	LikedBy []uuid.UUID `json:"likedBy"`
}

// ToggleLike handles POST /stories/like. One call likes, the next unlikes;
// the store performs the flip atomically.
func (h *Stories) ToggleLike(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromCtx(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req likeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := uuid.Parse(req.StoryID)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Story not found.")
		return
	}

	story, err := h.stories.ToggleLike(id, subject)
	if err != nil {
		respondInternal(w, "toggle like failed", err)
		return
	}
	if story == nil {
		respondMessage(w, http.StatusNotFound, "Story not found.")
		return
	}
	h.cache.Invalidate(r.Context(), story.Category)

	likedBy := story.LikedBy
	if likedBy == nil {
		likedBy = []uuid.UUID{}
	}
	respondJSON(w, http.StatusOK, likeResponse{Likes: story.Likes, LikedBy: likedBy})
}
