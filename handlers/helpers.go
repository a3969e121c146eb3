package handlers

import (
	apperrors "github.com/feedbackhub/feedback-backend/errors"
	"github.com/gin-gonic/gin"
)

// bindJSONOrError binds the request body into obj, attaching a validation
// error to the context on failure. Returns false when binding failed.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}
