package logger

import (
	"github.com/gin-gonic/gin"
)

// LogHTTPError logs an error that occurred while serving an HTTP request,
// attaching request metadata so failures can be correlated with access logs.
func LogHTTPError(c *gin.Context, err error, statusCode int, message string) {
	log := GetLogger()

	log.Errorw(message,
		"error", err,
		"status", statusCode,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"client_ip", c.ClientIP(),
		"request_id", c.GetString("request_id"),
	)
}
