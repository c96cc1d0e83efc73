package files

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrSourceUnavailable is returned when the study log is missing or unreadable.
var ErrSourceUnavailable = errors.New("study log unavailable")

// Manager centralizes where the study log lives on disk and how it is read.
type Manager struct {
	path string
}

// NewManager constructs a Manager for the log at path. If path is empty, it
// falls back to ~/.belajar/study.txt (see ResolveLogPath).
func NewManager(path string) (*Manager, error) {
	resolved, err := ResolveLogPath(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return nil, err
	}

	return &Manager{path: abs}, nil
}

// Path returns the absolute path of the study log.
func (m *Manager) Path() string {
	return m.path
}

// Check confirms the log exists and is a regular file.
func (m *Manager) Check() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	info, err := os.Stat(m.path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, m.path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrSourceUnavailable, m.path)
	}
	return nil
}

// Lines reads the whole log once and splits it into lines.
func (m *Manager) Lines(ctx context.Context) ([]string, error) {
	if err := m.Check(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, m.path, err)
	}
	return splitLines(string(data)), nil
}

func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	// Remove the trailing empty element produced by Split when the input ends with a newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
