//nolint:testpackage // Tests require internal access for thorough testing
package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/abatilo/todo/internal/config"
	"github.com/abatilo/todo/internal/storage"
)

func TestPrompterAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("first\r\nsecond"), &out)

	got, err := p.Ask("> ")
	if err != nil || got != "first" {
		t.Errorf("Ask() = %q, %v; want %q", got, err, "first")
	}
	got, err = p.Ask("> ")
	if err != nil || got != "second" {
		t.Errorf("Ask() = %q, %v; want %q", got, err, "second")
	}
	if _, err = p.Ask("> "); !errors.Is(err, io.EOF) {
		t.Errorf("Ask() error = %v, want io.EOF", err)
	}
	if out.String() != "> > > " {
		t.Errorf("prompts written = %q, want %q", out.String(), "> > > ")
	}
}

func TestPrompterAskKeepsSpaces(t *testing.T) {
	p := NewPrompter(strings.NewReader("  padded  \n"), io.Discard)
	got, err := p.Ask("")
	if err != nil || got != "  padded  " {
		t.Errorf("Ask() = %q, %v; want %q", got, err, "  padded  ")
	}
}

func TestAskLocation(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDir     string
		wantFile    string
		wantPrompts int
	}{
		{"both answered", "work\nlist.txt\n", "work", "list.txt", 2},
		{"both empty", "\n\n", "", storage.DefaultFilename, 2},
		{"input exhausted", "", "", storage.DefaultFilename, 2},
		{"only dir answered", "work\n", "work", storage.DefaultFilename, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			dir, file, err := AskLocation(p, &config.Config{File: storage.DefaultFilename})
			if err != nil {
				t.Fatalf("AskLocation failed: %v", err)
			}
			if dir != tt.wantDir || file != tt.wantFile {
				t.Errorf("AskLocation() = %q, %q; want %q, %q", dir, file, tt.wantDir, tt.wantFile)
			}
			prompts := strings.Count(out.String(), "Enter the custom")
			if prompts != tt.wantPrompts {
				t.Errorf("prompted %d times, want %d", prompts, tt.wantPrompts)
			}
		})
	}
}

func TestAskLocationSkipsConfiguredValues(t *testing.T) {
	path := writeTestConfig(t, "dir: fromconfig\nfile: fromconfig.txt\n")
	cfg, err := config.Load(path, nil)
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("ignored\n"), &out)
	dir, file, err := AskLocation(p, cfg)
	if err != nil {
		t.Fatalf("AskLocation failed: %v", err)
	}
	if dir != "fromconfig" || file != "fromconfig.txt" {
		t.Errorf("AskLocation() = %q, %q", dir, file)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected prompts: %q", out.String())
	}
}
