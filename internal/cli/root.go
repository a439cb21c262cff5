// Package cli wires the command line surface: the interactive shell on the
// root command, plus eval and version subcommands.
package cli

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"safecalc/internal/config"
	logpkg "safecalc/internal/log"
	"safecalc/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion records the build info reported by the version command.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// NewRootCommand builds the safecalc command tree. Running the root with no
// subcommand starts the interactive calculator.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		logFile    string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:   "safecalc",
		Short: "A safe desk calculator",
		Long: `safecalc is a desk calculator for the terminal. It evaluates plain
arithmetic only: no names, no calls, no side effects. Results stay exact
integers until an operation forces them to be otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if logFile != "" {
				cfg.Log.File = logFile
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, closeLog, err := openLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()
			p := tea.NewProgram(ui.New(cfg, logger), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append debug logs to this file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")
	cmd.AddCommand(newEvalCommand(), newVersionCommand())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			// No config dir on this system; run with defaults.
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// openLogger opens the configured log file, or a discard logger when none is
// set. The TUI owns the terminal, so logs never go to stderr.
func openLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Log.File == "" {
		return logpkg.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := logpkg.New(logpkg.Config{Level: cfg.Log.Level, Output: f})
	return logger, func() { f.Close() }, nil
}
