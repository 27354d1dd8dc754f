// Package session holds the state of one interactive run, the task list and
// where it is stored, and applies user actions to it.
package session

import (
	"fmt"

	"github.com/abatilo/todo/internal/storage"
	"github.com/abatilo/todo/internal/task"
)

// Kind identifies a user action.
type Kind int

const (
	KindDisplay Kind = iota + 1
	KindAdd
	KindRemove
	KindComplete
	KindSave
	KindExit
)

// String returns the action name used in logs.
func (k Kind) String() string {
	switch k {
	case KindDisplay:
		return "display"
	case KindAdd:
		return "add"
	case KindRemove:
		return "remove"
	case KindComplete:
		return "complete"
	case KindSave:
		return "save"
	case KindExit:
		return "exit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Action is one user request. Arg holds the task name for KindAdd and the
// task number for KindRemove and KindComplete.
type Action struct {
	Kind Kind
	Arg  string
}

// Result describes the effect of an applied action.
type Result struct {
	// Task is the task added, removed or completed.
	Task *task.Task
	// Tasks is a snapshot of the list for KindDisplay.
	Tasks []task.Task
	// Path is the file written by KindSave.
	Path string
	// Exit is set by KindExit.
	Exit bool
}

// Session is the explicit state of a run.
type Session struct {
	Tasks *task.List
	Store *storage.Store
}

// New creates a Session around an existing list.
func New(store *storage.Store, tasks *task.List) *Session {
	return &Session{Tasks: tasks, Store: store}
}

// Open creates a Session populated from the store's file.
func Open(store *storage.Store) (*Session, error) {
	tasks, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", store.Path(), err)
	}
	return New(store, tasks), nil
}

// Apply performs a single action against the session. Errors leave the task
// list unchanged.
func (s *Session) Apply(a Action) (Result, error) {
	switch a.Kind {
	case KindDisplay:
		return Result{Tasks: s.Tasks.Tasks()}, nil
	case KindAdd:
		t := s.Tasks.Add(a.Arg)
		return Result{Task: &t}, nil
	case KindRemove:
		target, err := s.Tasks.Resolve(a.Arg)
		if err != nil {
			return Result{}, err
		}
		removed, err := s.Tasks.Remove(target.ID)
		if err != nil {
			return Result{}, err
		}
		return Result{Task: &removed}, nil
	case KindComplete:
		target, err := s.Tasks.Resolve(a.Arg)
		if err != nil {
			return Result{}, err
		}
		done, err := s.Tasks.Complete(target.ID)
		if err != nil {
			return Result{}, err
		}
		return Result{Task: &done}, nil
	case KindSave:
		if err := s.Store.Save(s.Tasks); err != nil {
			return Result{}, fmt.Errorf("saving %s: %w", s.Store.Path(), err)
		}
		return Result{Path: s.Store.Path()}, nil
	case KindExit:
		return Result{Exit: true}, nil
	default:
		return Result{}, fmt.Errorf("unknown action: %s", a.Kind)
	}
}
