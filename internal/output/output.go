package output

import "github.com/abatilo/todo/internal/task"

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTaskList(tasks []task.Task) string
	FormatResult(msg string, t task.Task) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
