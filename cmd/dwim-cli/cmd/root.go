package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dwim/internal/adapters/editor"
	"dwim/internal/adapters/history"
	"dwim/internal/adapters/logfile"
	"dwim/internal/config"
	"dwim/internal/ports"
)

var (
	configPath string
	editorName string

	cfg    *config.Config
	logger *logfile.Logger
	ed     ports.Editor
	store  ports.HistoryStore
)

var rootCmd = &cobra.Command{
	Use:   "dwim-cli",
	Short: "Open file:line targets from terminal output in your editor",
	Long: `dwim-cli is a do-what-I-mean dispatcher from the terminal to your editor.

It takes file paths with line numbers (as printed by stack traces,
compilers and grep), and opens them at the right line in a configured
editor backend.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if editorName != "" {
			cfg.Editor = editorName
			cfg.Executable = ""
		}

		logger, err = logfile.Open(cfg.LogFile)
		if err != nil {
			return err
		}

		ed, err = editor.Select(cfg.Editor, cfg.Executable, cfg.Fallbacks, logger)
		if err != nil {
			return err
		}

		if cfg.History {
			store, err = history.Open("")
			if err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
		if logger != nil {
			logger.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&editorName, "editor", "e", "", "editor backend to use")
}

// GetEditor returns the initialized editor backend
func GetEditor() ports.Editor {
	return ed
}

// GetHistory returns the history store, or nil when disabled
func GetHistory() ports.HistoryStore {
	return store
}
