// Package store defines the persistence contract implemented by the postgres
// and in-memory backends.
package store

import (
	"context"

	"github.com/feedbackhub/feedback-backend/types"
)

// ListFeedbackParams describes a feedback list query. Category uses the
// types.CategoryAll sentinel to mean "no filter". Page is 1-indexed.
type ListFeedbackParams struct {
	Category string
	SortBy   string
	Page     int
	Limit    int
}

// Offset returns the row offset of the requested page.
func (p ListFeedbackParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// UserStore handles account persistence.
type UserStore interface {
	// CreateUser inserts a new user, assigning ID and CreatedAt. Returns
	// ErrConflict when the username is already taken.
	CreateUser(ctx context.Context, user *types.User) (*types.User, error)

	// GetUser returns the user with the given ID, or ErrNotFound.
	GetUser(ctx context.Context, id int64) (*types.User, error)

	// GetUserByUsername returns the user with the given username, or
	// ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
}

// FeedbackStore handles feedback persistence.
type FeedbackStore interface {
	// CreateFeedback inserts a new feedback entry, assigning a monotonic ID
	// and CreatedAt, and returns the stored record.
	CreateFeedback(ctx context.Context, fb *types.Feedback) (*types.Feedback, error)

	// ListFeedback returns the requested page of the filtered, sorted
	// feedback set together with the total match count and page count.
	// A page past the end yields an empty list, not an error.
	ListFeedback(ctx context.Context, params ListFeedbackParams) (*types.FeedbackList, error)
}

// Store is the combined persistence contract the application selects an
// implementation of at startup.
type Store interface {
	UserStore
	FeedbackStore

	// Mode identifies the backend ("postgres" or "memory") for health
	// reporting.
	Mode() string
}
