package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for constraint failures the handlers translate into
// specific HTTP statuses. Everything else coming out of a store is an
// internal failure.
var (
	// ErrDuplicateBookmark means a bookmark already exists for the
	// (user, story) pair.
	ErrDuplicateBookmark = errors.New("bookmark already exists")

	// ErrStoryNotFound means a write referenced a story that does not exist.
	ErrStoryNotFound = errors.New("story not found")

	// ErrDuplicateUsername means the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// PostgreSQL error codes we map to sentinel errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgErrCode extracts the PostgreSQL error code from a driver error, or ""
// if the error did not come from the server.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
