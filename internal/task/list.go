package task

import (
	"strconv"
	"strings"
	"time"

	todoerrors "github.com/abatilo/todo/internal/errors"
)

// List is the ordered, in-memory collection of tasks for a session.
// Positions are 1-based and shift on removal; IDs never change.
type List struct {
	tasks []Task
}

// NewList creates a List holding one incomplete task per name, in order.
func NewList(names ...string) *List {
	l := &List{tasks: make([]Task, 0, len(names))}
	for _, name := range names {
		l.Add(name)
	}
	return l
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a snapshot of the tasks in display order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Names returns the task names in display order.
func (l *List) Names() []string {
	names := make([]string, len(l.tasks))
	for i, t := range l.tasks {
		names[i] = t.Name
	}
	return names
}

// Add appends a new incomplete task. Any name is accepted, including "".
func (l *List) Add(name string) Task {
	createdAt := time.Now().UTC()
	t := Task{
		ID:        GenerateID(name, createdAt, l.exists),
		Name:      name,
		CreatedAt: createdAt,
	}
	l.tasks = append(l.tasks, t)
	return t
}

// Resolve maps user input holding a 1-based position to the task currently at
// that position.
func (l *List) Resolve(input string) (Task, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || pos < 1 || pos > len(l.tasks) {
		return Task{}, todoerrors.InvalidTaskNumberError{Input: input, Count: len(l.tasks)}
	}
	return l.tasks[pos-1], nil
}

// Remove deletes the task with the given ID and returns it. Later tasks move
// up one position.
func (l *List) Remove(id string) (Task, error) {
	i := l.index(id)
	if i < 0 {
		return Task{}, todoerrors.TaskNotFoundError{ID: id}
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, nil
}

// Complete marks the task with the given ID as completed and returns it.
func (l *List) Complete(id string) (Task, error) {
	i := l.index(id)
	if i < 0 {
		return Task{}, todoerrors.TaskNotFoundError{ID: id}
	}
	l.tasks[i].Completed = true
	return l.tasks[i], nil
}

func (l *List) exists(id string) bool {
	return l.index(id) >= 0
}

func (l *List) index(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
