package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewProjectID generates a globally unique project ID.
// Format: "project_" followed by exactly 12 lowercase hex characters.
func NewProjectID() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate project id: %w", err)
	}
	return "project_" + hex.EncodeToString(b), nil
}
