// handler_test.go provides shared infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"storyhub/internal/auth"
	"storyhub/internal/cache"
	"storyhub/internal/database"
	"storyhub/internal/middleware"
	"storyhub/internal/models"
	"storyhub/internal/store"
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

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "stories:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Valkey    *redis.Client
	Stories   *store.StoryStore
	Bookmarks *store.BookmarkStore
	Users     *store.UserStore
	Cache     *cache.StoryListCache
	Tokens    *auth.Tokens

	StoryH    *Stories
	BookmarkH *Bookmarks
	AuthH     *Auth
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	storyStore := store.NewStoryStore(db)
	bookmarkStore := store.NewBookmarkStore(db)
	userStore := store.NewUserStore(db)
	listCache := cache.NewStoryListCache(vk, 1*time.Minute)
	tokens := auth.NewTokens("handler-test-secret", time.Hour)

	return &testEnv{
		DB:        db,
		Valkey:    vk,
		Stories:   storyStore,
		Bookmarks: bookmarkStore,
		Users:     userStore,
		Cache:     listCache,
		Tokens:    tokens,
		StoryH:    NewStories(storyStore, listCache),
		BookmarkH: NewBookmarks(bookmarkStore),
		AuthH:     NewAuth(userStore, tokens),
	}
}

// testUser creates a user with a random username, removed on cleanup. The
// cascade takes the user's stories and bookmarks with it.
func testUser(t *testing.T, env *testEnv) *models.User {
	t.Helper()

	username := fmt.Sprintf("handler-%s", uuid.NewString()[:8])
	user, err := env.Users.Create(username, "secret-pass")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM users WHERE id = $1", user.ID)
	})
	return user
}

// testSlides builds n valid slides.
func testSlides(n int) []models.Slide {
	slides := make([]models.Slide, n)
	for i := range slides {
		slides[i] = models.Slide{
			Heading:     fmt.Sprintf("Slide %d", i+1),
			Description: fmt.Sprintf("Description %d", i+1),
			MediaURL:    fmt.Sprintf("https://media.example/%d.jpg", i+1),
		}
	}
	return slides
}

// testStory inserts a story owned by the given user.
func testStory(t *testing.T, env *testEnv, owner *models.User, category models.Category) *models.Story {
	t.Helper()

	story, err := env.Stories.Create(owner.ID, category, testSlides(3))
	if err != nil {
		t.Fatalf("create story: %v", err)
	}
	return story
}

// asUser adds the authenticated subject to a request's context, as
// RequireAuth would after verifying a token.
func asUser(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(middleware.WithSubject(r.Context(), userID))
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
