// Package memory provides the in-process fallback implementation of the store
// contract. It holds data in ordered slices guarded by a mutex and offers no
// durability: everything is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/feedbackhub/feedback-backend/internal/store"
	"github.com/feedbackhub/feedback-backend/types"
)

// Ensure Store implements the full store contract.
var _ store.Store = (*Store)(nil)

// Store is an in-memory implementation of store.Store. Safe for concurrent
// use; gin runs handlers on separate goroutines.
type Store struct {
	mu sync.RWMutex

	users           map[int64]*types.User
	usersByUsername map[string]*types.User
	nextUserID      int64

	feedback       []*types.Feedback
	nextFeedbackID int64
	lastCreatedAt  time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:           make(map[int64]*types.User),
		usersByUsername: make(map[string]*types.User),
		nextUserID:      1,
		nextFeedbackID:  1,
	}
}

// Mode identifies this backend for health reporting.
func (s *Store) Mode() string {
	return "memory"
}

// CreateUser inserts a new user, assigning an ID. Returns store.ErrConflict
// when the username is already taken.
func (s *Store) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByUsername[user.Username]; exists {
		return nil, store.ErrConflict
	}

	stored := &types.User{
		ID:        s.nextUserID,
		Username:  user.Username,
		Password:  user.Password,
		CreatedAt: time.Now().UTC(),
	}
	s.nextUserID++
	s.users[stored.ID] = stored
	s.usersByUsername[stored.Username] = stored

	return copyUser(stored), nil
}

// GetUser returns the user with the given ID, or store.ErrNotFound.
func (s *Store) GetUser(ctx context.Context, id int64) (*types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyUser(user), nil
}

// GetUserByUsername returns the user with the given username, or
// store.ErrNotFound.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByUsername[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyUser(user), nil
}

// CreateFeedback inserts a new feedback entry, assigning a monotonic ID and a
// non-decreasing CreatedAt, and returns the stored record.
func (s *Store) CreateFeedback(ctx context.Context, fb *types.Feedback) (*types.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	// Keep assigned timestamps strictly increasing so insertion order is
	// always recoverable from CreatedAt, even on coarse clocks.
	if !now.After(s.lastCreatedAt) {
		now = s.lastCreatedAt.Add(time.Nanosecond)
	}
	s.lastCreatedAt = now

	stored := &types.Feedback{
		ID:        s.nextFeedbackID,
		Name:      fb.Name,
		Email:     fb.Email,
		Category:  fb.Category,
		Message:   fb.Message,
		CreatedAt: now,
	}
	s.nextFeedbackID++
	s.feedback = append(s.feedback, stored)

	return copyFeedback(stored), nil
}

// ListFeedback returns the requested page of the filtered, sorted feedback
// set. Ties on CreatedAt break by ID ascending in both sort orders.
func (s *Store) ListFeedback(ctx context.Context, params store.ListFeedbackParams) (*types.FeedbackList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*types.Feedback, 0, len(s.feedback))
	for _, fb := range s.feedback {
		if params.Category == types.CategoryAll || string(fb.Category) == params.Category {
			matched = append(matched, fb)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if params.SortBy == types.SortOldest {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	total := len(matched)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	page := make([]*types.Feedback, 0, end-start)
	for _, fb := range matched[start:end] {
		page = append(page, copyFeedback(fb))
	}

	return &types.FeedbackList{
		Feedbacks:  page,
		TotalCount: total,
		PageCount:  store.PageCount(total, params.Limit),
	}, nil
}

func copyUser(u *types.User) *types.User {
	c := *u
	return &c
}

func copyFeedback(fb *types.Feedback) *types.Feedback {
	c := *fb
	return &c
}
