package task

import "time"

const (
	markDone = "✓"
	markOpen = " "
)

// Task represents a tracked to-do item.
type Task struct {
	ID        string
	Name      string
	Completed bool
	CreatedAt time.Time
}

// Mark returns the checkbox marker shown between brackets for the task.
func (t Task) Mark() string {
	if t.Completed {
		return markDone
	}
	return markOpen
}
