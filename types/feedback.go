package types

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// FeedbackCategory is the closed set of categories a feedback entry may have.
type FeedbackCategory string

const (
	CategorySuggestion FeedbackCategory = "suggestion"
	CategoryBug        FeedbackCategory = "bug"
	CategoryFeature    FeedbackCategory = "feature"

	// CategoryAll is a query-only sentinel meaning "no category filter".
	// It is never a valid value on a stored record.
	CategoryAll = "all"
)

// Sort orders accepted by the feedback list endpoint.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

const (
	maxNameLength    = 100
	maxEmailLength   = 255
	maxMessageLength = 5000

	// DefaultPageLimit is the page size used when the client does not
	// provide one.
	DefaultPageLimit = 10
)

// IsValid reports whether c is one of the storable categories.
func (c FeedbackCategory) IsValid() bool {
	switch c {
	case CategorySuggestion, CategoryBug, CategoryFeature:
		return true
	}
	return false
}

// Feedback represents a feedback entry stored in the database.
type Feedback struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email,omitempty"`
	Category  FeedbackCategory `json:"category"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
}

// FeedbackCreate represents the request body for submitting feedback.
type FeedbackCreate struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email,omitempty"`
	Category string `json:"category" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// Validate applies the canonical feedback submission rules and returns a
// field -> message map; an empty map means the input is valid. These rules are
// the single source of truth for every boundary that accepts feedback.
func (f *FeedbackCreate) Validate() map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		fields["name"] = "must not be blank"
	} else if len(f.Name) > maxNameLength {
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxNameLength)
	}

	if email := strings.TrimSpace(f.Email); email != "" {
		if len(email) > maxEmailLength {
			fields["email"] = fmt.Sprintf("must be at most %d characters", maxEmailLength)
		} else if _, err := mail.ParseAddress(email); err != nil {
			fields["email"] = "must be a valid email address"
		}
	}

	if !FeedbackCategory(f.Category).IsValid() {
		fields["category"] = "must be one of: suggestion, bug, feature"
	}

	if strings.TrimSpace(f.Message) == "" {
		fields["message"] = "must not be blank"
	} else if len(f.Message) > maxMessageLength {
		fields["message"] = fmt.Sprintf("must be at most %d characters", maxMessageLength)
	}

	return fields
}

// ToFeedback converts a validated submission into a record ready for
// insertion. Inputs are trimmed; ID and CreatedAt are assigned by the store.
func (f *FeedbackCreate) ToFeedback() *Feedback {
	return &Feedback{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Category: FeedbackCategory(f.Category),
		Message:  strings.TrimSpace(f.Message),
	}
}

// ListFeedbackRequest holds the query parameters of the feedback list
// endpoint. Defaults are applied by Normalize.
type ListFeedbackRequest struct {
	Category string `form:"category"`
	SortBy   string `form:"sortBy"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// Normalize fills in defaults and validates the query parameters, returning a
// field -> message map of violations.
func (r *ListFeedbackRequest) Normalize() map[string]string {
	fields := make(map[string]string)

	if r.Category == "" {
		r.Category = CategoryAll
	}
	if r.Category != CategoryAll && !FeedbackCategory(r.Category).IsValid() {
		fields["category"] = "must be one of: all, suggestion, bug, feature"
	}

	if r.SortBy == "" {
		r.SortBy = SortNewest
	}
	if r.SortBy != SortNewest && r.SortBy != SortOldest {
		fields["sortBy"] = "must be one of: newest, oldest"
	}

	if r.Page == 0 {
		r.Page = 1
	}
	if r.Page < 1 {
		fields["page"] = "must be a positive integer"
	}

	if r.Limit == 0 {
		r.Limit = DefaultPageLimit
	}
	if r.Limit < 1 {
		fields["limit"] = "must be a positive integer"
	}

	return fields
}

// FeedbackList is the paginated result of a feedback list query.
type FeedbackList struct {
	Feedbacks  []*Feedback `json:"feedbacks"`
	TotalCount int         `json:"totalCount"`
	PageCount  int         `json:"pageCount"`
}
