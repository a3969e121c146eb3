package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/feedbackhub/feedback-backend/internal/store"
	"github.com/feedbackhub/feedback-backend/types"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestStore_Mode(t *testing.T) {
	s, _ := setupMockStore(t)
	assert.Equal(t, "postgres", s.Mode())
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := setupMockStore(t)
		created := time.Now().UTC()

		mock.ExpectQuery(`INSERT INTO users \(username, password\) VALUES \(\$1, \$2\) RETURNING id, created_at`).
			WithArgs("gopher", "hashed-password").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

		user, err := s.CreateUser(ctx, &types.User{Username: "gopher", Password: "hashed-password"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "gopher", user.Username)
		assert.Equal(t, created, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username maps to ErrConflict", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("gopher", "hashed-password").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		_, err := s.CreateUser(ctx, &types.User{Username: "gopher", Password: "hashed-password"})
		assert.ErrorIs(t, err, store.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("found by id", func(t *testing.T) {
		s, mock := setupMockStore(t)
		created := time.Now().UTC()

		mock.ExpectQuery(`SELECT id, username, password, created_at FROM users WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "created_at"}).
				AddRow(int64(7), "gopher", "hashed", created))

		user, err := s.GetUser(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "gopher", user.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id maps to ErrNotFound", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT id, username, password, created_at FROM users WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "created_at"}))

		_, err := s.GetUser(ctx, 99)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("found by username", func(t *testing.T) {
		s, mock := setupMockStore(t)
		created := time.Now().UTC()

		mock.ExpectQuery(`SELECT id, username, password, created_at FROM users WHERE username = \$1`).
			WithArgs("gopher").
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "created_at"}).
				AddRow(int64(7), "gopher", "hashed", created))

		user, err := s.GetUserByUsername(ctx, "gopher")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateFeedback(t *testing.T) {
	ctx := context.Background()
	s, mock := setupMockStore(t)
	created := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO feedback \(name, email, category, message\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING id, created_at`).
		WithArgs("Ada", "ada@example.com", "bug", "the list page renders duplicates").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), created))

	fb, err := s.CreateFeedback(ctx, &types.Feedback{
		Name:     "Ada",
		Email:    "ada@example.com",
		Category: types.CategoryBug,
		Message:  "the list page renders duplicates",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), fb.ID)
	assert.Equal(t, created, fb.CreatedAt)
	assert.Equal(t, types.CategoryBug, fb.Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func feedbackRows(ids ...int64) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "name", "email", "category", "message", "created_at"})
	for _, id := range ids {
		rows.AddRow(id, "Ada", "", types.CategoryBug, "msg", time.Now().UTC())
	}
	return rows
}

func TestListFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("all categories, newest first", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedback`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectQuery(`SELECT (.+) FROM feedback ORDER BY created_at DESC, id ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(2, 0).
			WillReturnRows(feedbackRows(5, 4))

		list, err := s.ListFeedback(ctx, store.ListFeedbackParams{
			Category: types.CategoryAll, SortBy: types.SortNewest, Page: 1, Limit: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, list.TotalCount)
		assert.Equal(t, 3, list.PageCount)
		assert.Len(t, list.Feedbacks, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("category filter drives both queries", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedback WHERE category = \$1`).
			WithArgs("bug").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`SELECT (.+) FROM feedback WHERE category = \$1 ORDER BY created_at DESC, id ASC LIMIT \$2 OFFSET \$3`).
			WithArgs("bug", 10, 0).
			WillReturnRows(feedbackRows(3, 1))

		list, err := s.ListFeedback(ctx, store.ListFeedbackParams{
			Category: "bug", SortBy: types.SortNewest, Page: 1, Limit: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)
		assert.Equal(t, 1, list.PageCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("oldest sorts ascending with the same tie-break", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedback`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(`SELECT (.+) FROM feedback ORDER BY created_at ASC, id ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 0).
			WillReturnRows(feedbackRows(1, 2, 3))

		list, err := s.ListFeedback(ctx, store.ListFeedbackParams{
			Category: types.CategoryAll, SortBy: types.SortOldest, Page: 1, Limit: 10,
		})
		require.NoError(t, err)
		assert.Len(t, list.Feedbacks, 3)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("page beyond the end returns empty list with counts", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedback`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectQuery(`SELECT (.+) FROM feedback ORDER BY created_at DESC, id ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(2, 8).
			WillReturnRows(feedbackRows())

		list, err := s.ListFeedback(ctx, store.ListFeedbackParams{
			Category: types.CategoryAll, SortBy: types.SortNewest, Page: 5, Limit: 2,
		})
		require.NoError(t, err)
		assert.Empty(t, list.Feedbacks)
		assert.Equal(t, 5, list.TotalCount)
		assert.Equal(t, 3, list.PageCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields zero pages", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedback`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT (.+) FROM feedback ORDER BY created_at DESC, id ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 0).
			WillReturnRows(feedbackRows())

		list, err := s.ListFeedback(ctx, store.ListFeedbackParams{
			Category: types.CategoryAll, SortBy: types.SortNewest, Page: 1, Limit: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, list.TotalCount)
		assert.Equal(t, 0, list.PageCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 2, 3},
		{5, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, store.PageCount(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}
