// Package config loads settings from the optional YAML config file and the
// command-line flags bound to it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/storage"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// FileName is the config file name inside the config directory.
	FileName = "config.yaml"
)

// flagKeys maps config keys to the flag names that override them.
//
//nolint:gochecknoglobals // read-only lookup table
var flagKeys = map[string]string{
	"dir":              "dir",
	"file":             "file",
	"skip_blank_lines": "skip-blank-lines",
	"no_color":         "no-color",
	"debug":            "debug",
}

// Config holds the effective settings.
type Config struct {
	Dir            string `mapstructure:"dir" yaml:"dir"`
	File           string `mapstructure:"file" yaml:"file"`
	SkipBlankLines bool   `mapstructure:"skip_blank_lines" yaml:"skip_blank_lines"`
	NoColor        bool   `mapstructure:"no_color" yaml:"no_color"`
	Debug          bool   `mapstructure:"debug" yaml:"debug"`

	// Source is the config file that was read, empty if none.
	Source string `mapstructure:"-" yaml:"-"`

	dirSet  bool
	fileSet bool
}

// DefaultPath returns the default config file path.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, FileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(AppName, FileName)
	}
	return filepath.Join(home, ".config", AppName, FileName)
}

// Load reads the config file at path and applies changed flags on top.
// An empty path means DefaultPath, which may be absent. An explicit path must
// exist. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}

	source := ""
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		source = path
	case explicit && errors.Is(statErr, fs.ErrNotExist):
		return nil, todoerrors.ConfigNotFoundError{Path: path}
	case !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("reading %s: %w", path, statErr)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Source = source
	cfg.dirSet = v.IsSet("dir")
	cfg.fileSet = v.IsSet("file")
	if cfg.File == "" {
		cfg.File = storage.DefaultFilename
	}

	return &cfg, nil
}

// DirSet reports whether the directory came from the config file or a flag,
// so the interactive prompt for it can be skipped.
func (c *Config) DirSet() bool {
	return c.dirSet
}

// FileSet reports whether the file name came from the config file or a flag.
func (c *Config) FileSet() bool {
	return c.fileSet
}

// WriteYAML writes the effective settings as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
