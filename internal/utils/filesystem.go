package utils

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// FindProjectRoot traverses up directories from the working directory to
// find the nearest one containing a .ai-builder directory.
// Returns the path to the project root if found, empty string otherwise.
// Stops searching one level above the user's home directory.
func FindProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	for {
		// Stop searching at one level above home directory
		if currentDir == path.Join(homeDir, "..") {
			return "", nil
		}

		markerDir := filepath.Join(currentDir, ".ai-builder")
		fileInfo, err := os.Stat(markerDir)
		// No error means the path exists
		if err == nil {
			if fileInfo.IsDir() {
				return currentDir, nil
			}
		} else if !os.IsNotExist(err) {
			// Return any error that's not "file not found" (like permission issues)
			return "", fmt.Errorf("error checking for .ai-builder directory at %s: %w", currentDir, err)
		}

		parentDir := filepath.Dir(currentDir)

		// If we've reached the filesystem root and haven't found .ai-builder
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
