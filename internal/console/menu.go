package console

import (
	"strings"

	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/session"
)

const choicePrompt = "Enter your choice (1-6): "

type menuEntry struct {
	key   string
	label string
	kind  session.Kind
}

//nolint:gochecknoglobals // fixed menu table
var menu = []menuEntry{
	{"1", "Display Tasks", session.KindDisplay},
	{"2", "Add Task", session.KindAdd},
	{"3", "Remove Task", session.KindRemove},
	{"4", "Mark Task as Complete", session.KindComplete},
	{"5", "Save Tasks to File", session.KindSave},
	{"6", "Exit", session.KindExit},
}

// menuText renders the options block printed before every choice.
func menuText() string {
	var sb strings.Builder
	sb.WriteString("\nOptions:\n")
	for _, e := range menu {
		sb.WriteString(e.key + ". " + e.label + "\n")
	}
	return sb.String()
}

// ParseChoice maps a menu key to its action kind. Input must match a key exactly.
func ParseChoice(input string) (session.Kind, error) {
	for _, e := range menu {
		if e.key == input {
			return e.kind, nil
		}
	}
	return 0, todoerrors.InvalidChoiceError{Input: input}
}
