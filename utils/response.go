package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONError sends a structured error response. Used only for protocol-level
// failures (malformed payloads, unknown resources on reads, internal errors);
// business rejections are signaled through the success field instead.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
