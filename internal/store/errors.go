package store

import "errors"

// Error Handling Guidelines:
// - Stores: return these sentinels (or wrap driver errors with %w)
// - Handlers: translate to apperrors.* for HTTP-appropriate responses

// Predefined errors for the store layer.
var (
	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates a unique-key conflict, e.g. a duplicate username.
	ErrConflict = errors.New("conflict")
)

// PageCount computes the number of pages a result set spans. A zero total
// yields zero pages.
func PageCount(totalCount, limit int) int {
	if limit <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}
