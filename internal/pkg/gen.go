package pkg

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateGameCenterID - generates a new unique game center id.
func GenerateGameCenterID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}

	return id.String(), nil
}
