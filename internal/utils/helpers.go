// internal/utils/helpers.go
// General utility functions

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// NewID generates a new UUID string for entity primary keys.
func NewID() string {
	return uuid.New().String()
}

// NewRequestID generates a unique request ID for tracing.
func NewRequestID() string {
	return fmt.Sprintf("req_%s", NewID())
}

// NewRefreshToken generates a secure refresh token.
func NewRefreshToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// StringPtr returns a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to an int
func IntPtr(i int) *int {
	return &i
}
