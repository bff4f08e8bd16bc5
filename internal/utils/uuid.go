package utils

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a new UUID v7, used to correlate the log lines of one
// hook invocation.
func GenerateUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
