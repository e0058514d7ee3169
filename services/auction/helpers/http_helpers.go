package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-server/internal/auctionerrors"
	"auction-server/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures.
// A malformed payload is a protocol-level failure, distinct from the
// success=false business outcome.
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// IsBusinessRejection reports whether err is a normal, retriable business
// outcome (duplicate nickname, unknown product, bid not high enough) that
// must be surfaced as success=false rather than as an HTTP error.
func IsBusinessRejection(err error) bool {
	return errors.Is(err, auctionerrors.ErrNicknameTaken) ||
		errors.Is(err, auctionerrors.ErrProductNotFound) ||
		errors.Is(err, auctionerrors.ErrBidTooLow)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
