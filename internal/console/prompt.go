package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abatilo/todo/internal/config"
	"github.com/abatilo/todo/internal/storage"
)

const (
	dirPrompt  = "Enter the custom directory path to store files (leave empty for the current directory): "
	filePrompt = "Enter the custom filename to save tasks (leave empty for default '" + storage.DefaultFilename + "'): "
)

// Prompter writes prompts and reads one line of input per prompt.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter creates a Prompter reading answers from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Ask prints prompt and returns the next input line without its line ending.
// It returns io.EOF once input is exhausted; a final unterminated line is
// still returned without error.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}

// AskLocation asks for the task directory and file name unless cfg already
// sets them, and returns the resulting directory and file name. Exhausted
// input counts as an empty answer.
func AskLocation(p *Prompter, cfg *config.Config) (string, string, error) {
	dir := cfg.Dir
	if !cfg.DirSet() {
		answer, err := p.Ask(dirPrompt)
		if err != nil && !errors.Is(err, io.EOF) {
			return "", "", err
		}
		dir = answer
	}

	file := cfg.File
	if !cfg.FileSet() {
		answer, err := p.Ask(filePrompt)
		if err != nil && !errors.Is(err, io.EOF) {
			return "", "", err
		}
		file = answer
	}
	if file == "" {
		file = storage.DefaultFilename
	}

	return dir, file, nil
}
