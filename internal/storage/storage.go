package storage

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/abatilo/todo/internal/task"
)

// Store handles the flat task file: one task name per line.
type Store struct {
	path string

	// SkipBlankLines drops blank lines on load instead of turning them into
	// empty-named tasks.
	SkipBlankLines bool
}

// NewStore creates a Store for filename inside dir (see ResolvePath).
func NewStore(dir, filename string) (*Store, error) {
	path, err := ResolvePath(dir, filename)
	if err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// NewStoreWithPath creates a Store with a custom file path.
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Path returns the path of the task file.
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory holding the task file.
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Init creates the directory holding the task file.
func (s *Store) Init() error {
	//nolint:gosec // G301: 0755 is appropriate for a user task directory
	return os.MkdirAll(s.Dir(), 0o755)
}

// Load reads the task file into a new List. A missing file yields an empty
// List. Loaded tasks are never completed.
func (s *Store) Load() (*task.List, error) {
	content, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return task.NewList(), nil
	}
	if err != nil {
		return nil, err
	}
	names, err := ParseLines(bytes.NewReader(content), s.SkipBlankLines)
	if err != nil {
		return nil, err
	}
	return task.NewList(names...), nil
}

// Save overwrites the task file with one line per task name. Completion state
// is not written.
func (s *Store) Save(l *task.List) error {
	//nolint:gosec // G306: 0644 is appropriate for user-readable task files
	return os.WriteFile(s.path, SerializeLines(l.Names()), 0o644)
}
