package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".belajar"
	// DefaultLogName is the study log looked up inside DefaultDirName.
	DefaultLogName = "study.txt"
)

// ResolveLogPath determines which study log to read. An empty configured
// path falls back to ~/.belajar/study.txt; a leading ~ is expanded.
func ResolveLogPath(configured string) (string, error) {
	configured = strings.TrimSpace(configured)
	if configured != "" {
		return normalizePath(configured)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName, DefaultLogName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
