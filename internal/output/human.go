package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/abatilo/todo/internal/task"
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct {
	header lipgloss.Style
	done   lipgloss.Style
	failed lipgloss.Style
}

// NewHumanFormatter creates a HumanFormatter whose colors follow the terminal
// capabilities of w. noColor forces plain text.
func NewHumanFormatter(w io.Writer, noColor bool) *HumanFormatter {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &HumanFormatter{
		header: r.NewStyle().Bold(true),
		done:   r.NewStyle().Foreground(lipgloss.Color("46")),
		failed: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// FormatTaskList formats the numbered task list under a "Tasks:" header.
// An empty list prints only the header.
func (f *HumanFormatter) FormatTaskList(tasks []task.Task) string {
	var sb strings.Builder
	sb.WriteString(f.header.Render("Tasks:"))
	sb.WriteString("\n")
	for i, t := range tasks {
		sb.WriteString(f.formatTaskLine(i+1, t))
	}
	return sb.String()
}

// formatTaskLine formats a single task as "N. [✓] name".
func (f *HumanFormatter) formatTaskLine(pos int, t task.Task) string {
	mark := t.Mark()
	if t.Completed {
		mark = f.done.Render(mark)
	}
	return fmt.Sprintf("%d. [%s] %s\n", pos, mark, t.Name)
}

// FormatResult formats the outcome of a task mutation. Humans only need the message.
func (f *HumanFormatter) FormatResult(msg string, _ task.Task) string {
	return f.FormatMessage(msg)
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("%s %s\n", f.failed.Render("Error:"), err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
