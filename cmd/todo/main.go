package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abatilo/todo/internal/config"
	"github.com/abatilo/todo/internal/console"
	"github.com/abatilo/todo/internal/logging"
	"github.com/abatilo/todo/internal/output"
	"github.com/abatilo/todo/internal/session"
	"github.com/abatilo/todo/internal/storage"
)

//nolint:gochecknoglobals // CLI flags, config and formatter are package-level by design
var (
	jsonOutput bool
	configPath string
	cfg        *config.Config
	formatter  output.Formatter
	logger     = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A minimal, file-based personal task list",
		Long: "todo - A minimal, file-based personal task list.\n\n" +
			"Run without a subcommand for the interactive menu.",
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter(os.Stdout, false)
			}

			var err error
			cfg, err = config.Load(configPath, cmd.Flags())
			if err != nil {
				printError(err)
			}
			if !jsonOutput {
				formatter = output.NewHumanFormatter(os.Stdout, cfg.NoColor)
			}
			logger = logging.New(os.Stderr, cfg.Debug)
			if cfg.Source != "" {
				logger.Debug("config loaded", zap.String("path", cfg.Source))
			}
		},
		Run: func(cmd *cobra.Command, _ []string) {
			runInteractive(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&jsonOutput, "json", false, "Output in JSON format (subcommands only)")
	flags.StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/todo/config.yaml)")
	flags.String("dir", "", "Directory holding the task file")
	flags.String("file", "", "Task file name (default \"tasks.txt\")")
	flags.Bool("skip-blank-lines", false, "Ignore blank lines when loading the task file")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("debug", false, "Write debug logs to stderr")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		rmCmd(),
		configCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	logger.Debug("command failed", zap.Error(err))
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// newStore creates the Store for dir and file with the configured load options.
func newStore(dir, file string) (*storage.Store, error) {
	store, err := storage.NewStore(dir, file)
	if err != nil {
		return nil, err
	}
	store.SkipBlankLines = cfg.SkipBlankLines
	return store, nil
}

// openSession loads the configured task file without prompting.
func openSession() *session.Session {
	store, err := newStore(cfg.Dir, cfg.File)
	if err != nil {
		printError(err)
	}
	sess, err := session.Open(store)
	if err != nil {
		printError(err)
	}
	logger.Debug("tasks loaded", zap.String("path", store.Path()), zap.Int("count", sess.Tasks.Len()))
	return sess
}

// apply runs an action and exits on failure.
func apply(sess *session.Session, a session.Action) session.Result {
	res, err := sess.Apply(a)
	if err != nil {
		printError(err)
	}
	return res
}

// runInteractive implements the menu loop started by a bare 'todo'.
func runInteractive(cmd *cobra.Command) {
	p := console.NewPrompter(os.Stdin, os.Stdout)

	dir, file, err := console.AskLocation(p, cfg)
	if err != nil {
		printError(err)
	}

	if err = storage.EnsureDir(dir); err != nil {
		printError(err)
	}
	store, err := newStore(dir, file)
	if err != nil {
		printError(err)
	}
	if err = store.Init(); err != nil {
		printError(err)
	}

	sess, err := session.Open(store)
	if err != nil {
		printError(err)
	}
	logger.Debug("tasks loaded", zap.String("path", store.Path()), zap.Int("count", sess.Tasks.Len()))

	c := console.New(sess, p, output.NewHumanFormatter(os.Stdout, cfg.NoColor), logger)
	if err = c.Run(cmd.Context()); err != nil {
		printError(err)
	}
}

// addCmd implements 'todo add'.
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Append a task and save",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			sess := openSession()
			if err := sess.Store.Init(); err != nil {
				printError(err)
			}

			res := apply(sess, session.Action{Kind: session.KindAdd, Arg: strings.Join(args, " ")})
			apply(sess, session.Action{Kind: session.KindSave})
			printOutput(formatter.FormatResult(fmt.Sprintf("Task '%s' added successfully!", res.Task.Name), *res.Task))
		},
	}
}

// listCmd implements 'todo list'.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			sess := openSession()
			res := apply(sess, session.Action{Kind: session.KindDisplay})
			printOutput(formatter.FormatTaskList(res.Tasks))
		},
	}
}

// rmCmd implements 'todo rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <number>",
		Short: "Remove a task by its number and save",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			sess := openSession()
			res := apply(sess, session.Action{Kind: session.KindRemove, Arg: args[0]})
			apply(sess, session.Action{Kind: session.KindSave})
			printOutput(formatter.FormatResult(fmt.Sprintf("Task '%s' removed successfully!", res.Task.Name), *res.Task))
		},
	}
}

// configCmd implements 'todo config'.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			if cfg.Source != "" {
				printOutput(fmt.Sprintf("# %s\n", cfg.Source))
			}
			if err := cfg.WriteYAML(os.Stdout); err != nil {
				printError(err)
			}
		},
	}
}
