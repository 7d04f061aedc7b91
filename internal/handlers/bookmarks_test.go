package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"storyhub/internal/models"
)

func bookmarkBody(storyID string) string {
	return fmt.Sprintf(`{"storyId": %q}`, storyID)
}

func TestBookmarksAdd(t *testing.T) {
	env := newTestEnv(t)
	owner := testUser(t, env)
	reader := testUser(t, env)
	story := testStory(t, env, owner, models.CategoryFood)

	add := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/bookmarks", strings.NewReader(bookmarkBody(story.ID.String())))
		req = asUser(req, reader.ID)
		rec := httptest.NewRecorder()
		env.BookmarkH.Add(rec, req)
		return rec
	}

	rec := add()
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	bookmark := decodeBody[models.Bookmark](t, rec)
	if bookmark.UserID != reader.ID || bookmark.StoryID != story.ID {
		t.Errorf("bookmark = %+v", bookmark)
	}

	// Saving twice is an error, not a toggle.
	rec = add()
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d: %s", rec.Code, rec.Body.String())
	}
	msg := decodeBody[map[string]string](t, rec)
	if msg["message"] != "Bookmark already exists." {
		t.Errorf("message = %q", msg["message"])
	}
}

func TestBookmarksAddUnknownStory(t *testing.T) {
	env := newTestEnv(t)
	reader := testUser(t, env)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodPost, "/bookmarks", strings.NewReader(bookmarkBody(id)))
		req = asUser(req, reader.ID)
		rec := httptest.NewRecorder()
		env.BookmarkH.Add(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("id %q: expected 404, got %d", id, rec.Code)
		}
	}
}

func TestBookmarksRemove(t *testing.T) {
	env := newTestEnv(t)
	owner := testUser(t, env)
	reader := testUser(t, env)
	story := testStory(t, env, owner, models.CategoryTravel)

	if _, err := env.Bookmarks.Create(reader.ID, story.ID); err != nil {
		t.Fatalf("create bookmark: %v", err)
	}

	remove := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/bookmarks", strings.NewReader(bookmarkBody(story.ID.String())))
		req = asUser(req, reader.ID)
		rec := httptest.NewRecorder()
		env.BookmarkH.Remove(rec, req)
		return rec
	}

	rec := remove()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	msg := decodeBody[map[string]string](t, rec)
	if msg["message"] != "Bookmark removed successfully." {
		t.Errorf("message = %q", msg["message"])
	}

	// Removing again finds nothing.
	rec = remove()
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after removal, got %d", rec.Code)
	}
}

func TestBookmarksListByUser(t *testing.T) {
	env := newTestEnv(t)
	owner := testUser(t, env)
	reader := testUser(t, env)
	story := testStory(t, env, owner, models.CategoryEducation)

	if _, err := env.Bookmarks.Create(reader.ID, story.ID); err != nil {
		t.Fatalf("create bookmark: %v", err)
	}

	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/bookmarks/user/"+reader.ID.String(), nil),
		"userId", reader.ID.String())
	rec := httptest.NewRecorder()
	env.BookmarkH.ListByUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	bookmarks := decodeBody[[]models.BookmarkWithStory](t, rec)
	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}
	if bookmarks[0].Story.ID != story.ID {
		t.Errorf("resolved story = %s, want %s", bookmarks[0].Story.ID, story.ID)
	}
	if len(bookmarks[0].Story.Slides) != 3 {
		t.Errorf("resolved story has %d slides, want 3", len(bookmarks[0].Story.Slides))
	}

	// A user with no bookmarks gets an empty array, not null.
	req = withChiURLParam(httptest.NewRequest(http.MethodGet, "/bookmarks/user/"+owner.ID.String(), nil),
		"userId", owner.ID.String())
	rec = httptest.NewRecorder()
	env.BookmarkH.ListByUser(rec, req)
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}
}
