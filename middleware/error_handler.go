package middleware

import (
	"fmt"
	"strconv"

	"github.com/feedbackhub/feedback-backend/errors"
	"github.com/feedbackhub/feedback-backend/logger"
	"github.com/feedbackhub/feedback-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the gin context into the uniform
// JSON error envelope. Raw driver errors and stack traces are logged, never
// returned to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			response := types.ErrorResponse{
				Type:    string(appError.Type),
				Message: appError.Message,
				Code:    strconv.Itoa(statusCode),
				Fields:  appError.Fields,
			}

			// Detail may carry internals for 5xx errors; only echo it for
			// client-side failures.
			if appError.Detail != "" && statusCode < 500 {
				response.Details = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		// Gin binding errors surface as plain errors of type Bind.
		if c.Errors.Last().Type == gin.ErrorTypeBind {
			logger.LogHTTPError(c, err, 400, "Request binding error")
			c.JSON(400, types.ErrorResponse{
				Type:    string(errors.ValidationError),
				Message: "Failed to bind request",
				Code:    "400",
			})
			return
		}

		logger.LogHTTPError(c, err, 500, "Unhandled error")
		c.JSON(500, types.ErrorResponse{
			Type:    string(errors.ServerError),
			Message: "Internal server error",
			Code:    "500",
		})
	}
}
