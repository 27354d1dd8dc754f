// Package console runs the interactive menu loop over a session.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/output"
	"github.com/abatilo/todo/internal/session"
)

const (
	namePrompt     = "Enter the task name: "
	removePrompt   = "Enter the task number to remove: "
	completePrompt = "Enter the task number to mark as complete: "

	invalidChoiceMsg = "Invalid choice. Please try again."
	invalidNumberMsg = "Invalid task number. Please try again."
)

// Console reads menu choices and applies them to a session.
type Console struct {
	sess      *session.Session
	prompt    *Prompter
	formatter output.Formatter
	log       *zap.Logger
}

// New creates a Console. Output goes to the prompter's writer.
func New(sess *session.Session, prompt *Prompter, formatter output.Formatter, log *zap.Logger) *Console {
	return &Console{
		sess:      sess,
		prompt:    prompt,
		formatter: formatter,
		log:       log,
	}
}

// Run shows the menu and handles choices until the user exits or input ends.
// It never saves on its own.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.print(menuText())
		choice, err := c.prompt.Ask(choicePrompt)
		if err != nil {
			return endOfInput(err)
		}

		exit, err := c.Step(choice)
		if err != nil {
			return endOfInput(err)
		}
		if exit {
			c.log.Debug("exit requested", zap.Int("count", c.sess.Tasks.Len()))
			return nil
		}
	}
}

// Step handles one menu choice, including its follow-up prompt. Invalid
// choices, invalid task numbers and failed saves are reported and swallowed.
func (c *Console) Step(choice string) (bool, error) {
	kind, err := ParseChoice(choice)
	if err != nil {
		c.log.Debug("invalid choice", zap.String("input", choice))
		c.print(invalidChoiceMsg + "\n")
		return false, nil
	}

	action := session.Action{Kind: kind}
	switch kind {
	case session.KindAdd:
		if action.Arg, err = c.prompt.Ask(namePrompt); err != nil {
			return false, err
		}
	case session.KindRemove, session.KindComplete:
		c.display()
		p := removePrompt
		if kind == session.KindComplete {
			p = completePrompt
		}
		if action.Arg, err = c.prompt.Ask(p); err != nil {
			return false, err
		}
	case session.KindDisplay, session.KindSave, session.KindExit:
	}

	res, err := c.sess.Apply(action)
	if err != nil {
		return false, c.handleError(action, err)
	}
	c.report(action, res)
	return res.Exit, nil
}

func (c *Console) handleError(action session.Action, err error) error {
	var invalid todoerrors.InvalidTaskNumberError
	switch {
	case errors.As(err, &invalid):
		c.log.Debug("invalid task number",
			zap.Stringer("action", action.Kind),
			zap.String("input", action.Arg),
		)
		c.print(invalidNumberMsg + "\n")
		return nil
	case action.Kind == session.KindSave:
		c.log.Debug("save failed", zap.String("path", c.sess.Store.Path()), zap.Error(err))
		c.print(c.formatter.FormatError(err))
		return nil
	default:
		return err
	}
}

func (c *Console) report(action session.Action, res session.Result) {
	switch action.Kind {
	case session.KindDisplay:
		c.print("\n" + c.formatter.FormatTaskList(res.Tasks))
	case session.KindAdd:
		c.log.Debug("task added", zap.String("id", res.Task.ID))
		c.print(c.formatter.FormatResult(fmt.Sprintf("Task '%s' added successfully!", res.Task.Name), *res.Task))
	case session.KindRemove:
		c.log.Debug("task removed", zap.String("id", res.Task.ID))
		c.print(c.formatter.FormatResult(fmt.Sprintf("Task '%s' removed successfully!", res.Task.Name), *res.Task))
	case session.KindComplete:
		c.log.Debug("task completed", zap.String("id", res.Task.ID))
		c.print(c.formatter.FormatResult("Task marked as complete!", *res.Task))
	case session.KindSave:
		c.log.Debug("tasks saved", zap.String("path", res.Path), zap.Int("count", c.sess.Tasks.Len()))
		c.print(c.formatter.FormatMessage(fmt.Sprintf("Tasks saved to '%s' successfully!", res.Path)))
	case session.KindExit:
	}
}

func (c *Console) display() {
	c.print("\n" + c.formatter.FormatTaskList(c.sess.Tasks.Tasks()))
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.prompt.w, s)
}

// endOfInput turns exhausted input into a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
