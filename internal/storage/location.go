package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilename is used when no task file name is configured.
const DefaultFilename = "tasks.txt"

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ResolvePath joins dir and filename into the task file path.
// An empty dir means the current directory, an empty filename means
// DefaultFilename, and an absolute filename ignores dir.
func ResolvePath(dir, filename string) (string, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	filename, err := ExpandHome(filename)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(filename) {
		return filename, nil
	}
	if dir == "" {
		return filename, nil
	}
	dir, err = ExpandHome(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}

// EnsureDir creates dir, after "~" expansion, if it is not empty.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	dir, err := ExpandHome(dir)
	if err != nil {
		return err
	}
	//nolint:gosec // G301: 0755 is appropriate for a user task directory
	return os.MkdirAll(dir, 0o755)
}
