package handlers

import (
	"net/http"

	apperrors "github.com/feedbackhub/feedback-backend/errors"
	"github.com/feedbackhub/feedback-backend/internal/store"
	"github.com/feedbackhub/feedback-backend/types"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles feedback submission and listing endpoints.
type FeedbackHandler struct {
	feedbackStore store.FeedbackStore
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackStore store.FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{feedbackStore: feedbackStore}
}

// SubmitFeedback godoc
// @Summary      Submit feedback
// @Description  Submit a categorized feedback entry
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      types.FeedbackCreate  true  "Feedback payload"
// @Success      201   {object}  types.Feedback
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req types.FeedbackCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		_ = c.Error(apperrors.ValidationFailedFields("validation failed", fields))
		return
	}

	created, err := h.feedbackStore.CreateFeedback(c.Request.Context(), req.ToFeedback())
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListFeedback godoc
// @Summary      List feedback
// @Description  List feedback filtered by category, sorted and paginated
// @Tags         feedback
// @Produce      json
// @Param        category  query     string  false  "Category filter (all, suggestion, bug, feature)"
// @Param        sortBy    query     string  false  "Sort order (newest, oldest)"
// @Param        page      query     int     false  "1-indexed page"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  types.FeedbackList
// @Failure      400       {object}  types.ErrorResponse
// @Failure      500       {object}  types.ErrorResponse
// @Router       /api/feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	var req types.ListFeedbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_query_params", "page and limit must be integers"))
		return
	}

	if fields := req.Normalize(); len(fields) > 0 {
		_ = c.Error(apperrors.ValidationFailedFields("validation failed", fields))
		return
	}

	list, err := h.feedbackStore.ListFeedback(c.Request.Context(), store.ListFeedbackParams{
		Category: req.Category,
		SortBy:   req.SortBy,
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, list)
}
