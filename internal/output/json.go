package output

import (
	"encoding/json"
	"time"

	"github.com/abatilo/todo/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// taskJSON is the JSON representation of a task.
type taskJSON struct {
	Position  int    `json:"position,omitempty"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

func toTaskJSON(pos int, t task.Task) taskJSON {
	return taskJSON{
		Position:  pos,
		ID:        t.ID,
		Name:      t.Name,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// FormatTaskList formats a list of tasks as JSON.
func (f *JSONFormatter) FormatTaskList(tasks []task.Task) string {
	jsonTasks := make([]taskJSON, len(tasks))
	for i, t := range tasks {
		jsonTasks[i] = toTaskJSON(i+1, t)
	}
	return marshalJSON(jsonTasks)
}

// resultJSON is the JSON representation of a task mutation.
type resultJSON struct {
	Message string   `json:"message"`
	Task    taskJSON `json:"task"`
}

// FormatResult formats a task mutation as JSON. The task carries no position
// since it may no longer be in the list.
func (f *JSONFormatter) FormatResult(msg string, t task.Task) string {
	return marshalJSON(resultJSON{Message: msg, Task: toTaskJSON(0, t)})
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
