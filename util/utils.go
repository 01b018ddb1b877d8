package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetAbsolutePath resolves relativePath against the current working directory.
// Absolute paths are returned cleaned but otherwise unchanged.
func GetAbsolutePath(relativePath string) (string, error) {
	if filepath.IsAbs(relativePath) {
		return filepath.Clean(relativePath), nil
	}

	// Get the current working directory
	root, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	return filepath.Join(root, relativePath), nil
}
