package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string. IDs are opaque to
// clients; the only supported comparison is equality.
func GenerateID() string {
	return uuid.New().String()
}
