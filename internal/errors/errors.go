//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// InvalidChoiceError indicates a menu choice that doesn't map to any action.
type InvalidChoiceError struct {
	Input string
}

func (e InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice: %q", e.Input)
}

// InvalidTaskNumberError indicates a task reference that is not a number or is
// outside 1..Count.
type InvalidTaskNumberError struct {
	Input string
	Count int
}

func (e InvalidTaskNumberError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("invalid task number: %q (no tasks)", e.Input)
	}
	return fmt.Sprintf("invalid task number: %q (valid: 1-%d)", e.Input, e.Count)
}

// TaskNotFoundError indicates the task ID doesn't match any task in the list.
type TaskNotFoundError struct {
	ID string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// ConfigNotFoundError indicates an explicitly requested config file is missing.
type ConfigNotFoundError struct {
	Path string
}

func (e ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}
