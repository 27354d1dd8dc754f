//nolint:testpackage // Tests require internal access for thorough testing
package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/storage"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dir", "", "")
	fs.String("file", "", "")
	fs.Bool("skip-blank-lines", false, "")
	fs.Bool("no-color", false, "")
	fs.Bool("debug", false, "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("", newFlags(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.File != storage.DefaultFilename {
		t.Errorf("File = %q, want %q", cfg.File, storage.DefaultFilename)
	}
	if cfg.Dir != "" || cfg.SkipBlankLines || cfg.NoColor || cfg.Debug {
		t.Errorf("unexpected non-default config: %+v", cfg)
	}
	if cfg.DirSet() || cfg.FileSet() {
		t.Error("DirSet/FileSet should be false without file or flags")
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, "dir: ~/lists\nfile: work.txt\nskip_blank_lines: true\n")

	cfg, err := Load(path, newFlags(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dir != "~/lists" || cfg.File != "work.txt" || !cfg.SkipBlankLines {
		t.Errorf("config = %+v", cfg)
	}
	if !cfg.DirSet() || !cfg.FileSet() {
		t.Error("DirSet/FileSet should be true when the file sets them")
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "dir: fromfile\nfile: fromfile.txt\n")

	cfg, err := Load(path, newFlags(t, "--file", "fromflag.txt", "--debug"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.File != "fromflag.txt" {
		t.Errorf("File = %q, want %q", cfg.File, "fromflag.txt")
	}
	if cfg.Dir != "fromfile" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "fromfile")
	}
	if !cfg.Debug {
		t.Error("Debug should be set by flag")
	}
}

func TestLoadFlagOnlySetsOneField(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("", newFlags(t, "--dir", "work"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.DirSet() {
		t.Error("DirSet should be true when --dir is passed")
	}
	if cfg.FileSet() {
		t.Error("FileSet should be false when --file is not passed")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(path, nil)
	var notFound todoerrors.ConfigNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want ConfigNotFoundError", err)
	}
	if notFound.Path != path {
		t.Errorf("Path = %q, want %q", notFound.Path, path)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "dir: [unclosed\n")
	if _, err := Load(path, nil); err == nil {
		t.Error("Load should fail on invalid YAML")
	}
}

func TestDefaultPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	if got, want := DefaultPath(), filepath.Join(xdg, AppName, FileName); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	if got, want := DefaultPath(), filepath.Join(home, ".config", AppName, FileName); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestWriteYAML(t *testing.T) {
	cfg := &Config{Dir: "work", File: "tasks.txt", NoColor: true, Source: "/ignored"}

	var buf bytes.Buffer
	if err := cfg.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if decoded["dir"] != "work" || decoded["file"] != "tasks.txt" || decoded["no_color"] != true {
		t.Errorf("decoded = %v", decoded)
	}
	if _, ok := decoded["source"]; ok {
		t.Error("Source should not be written")
	}
}
