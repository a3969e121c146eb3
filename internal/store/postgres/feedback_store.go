package postgres

import (
	"context"
	"fmt"

	"github.com/feedbackhub/feedback-backend/internal/store"
	"github.com/feedbackhub/feedback-backend/types"
)

// CreateFeedback inserts a new feedback entry and returns the stored record
// with its generated ID and timestamp. IDs come from the table's identity
// sequence, so they are monotonic with insertion order.
func (s *Store) CreateFeedback(ctx context.Context, fb *types.Feedback) (*types.Feedback, error) {
	stored := &types.Feedback{
		Name:     fb.Name,
		Email:    fb.Email,
		Category: fb.Category,
		Message:  fb.Message,
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO feedback (name, email, category, message) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		fb.Name, fb.Email, string(fb.Category), fb.Message,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return stored, nil
}

// ListFeedback returns one page of the filtered, sorted feedback set plus the
// total match count. Ties on created_at break by id ascending in both sort
// orders so pagination stays deterministic.
func (s *Store) ListFeedback(ctx context.Context, params store.ListFeedbackParams) (*types.FeedbackList, error) {
	var (
		where string
		args  []any
	)
	if params.Category != types.CategoryAll {
		where = " WHERE category = $1"
		args = append(args, params.Category)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM feedback" + where
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	order := "created_at DESC, id ASC"
	if params.SortBy == types.SortOldest {
		order = "created_at ASC, id ASC"
	}

	listQuery := fmt.Sprintf(
		"SELECT id, name, email, category, message, created_at FROM feedback%s ORDER BY %s LIMIT $%d OFFSET $%d",
		where, order, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	rows, err := s.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	feedbacks := make([]*types.Feedback, 0, params.Limit)
	for rows.Next() {
		fb := &types.Feedback{}
		if err := rows.Scan(&fb.ID, &fb.Name, &fb.Email, &fb.Category, &fb.Message, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		feedbacks = append(feedbacks, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}

	return &types.FeedbackList{
		Feedbacks:  feedbacks,
		TotalCount: total,
		PageCount:  store.PageCount(total, params.Limit),
	}, nil
}
