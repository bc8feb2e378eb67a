package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"dwim/internal/adapters/editor"
	"dwim/internal/adapters/history"
	"dwim/internal/adapters/logfile"
	"dwim/internal/adapters/tui"
	"dwim/internal/application/commands"
	"dwim/internal/config"
	"dwim/internal/ports"
)

func main() {
	fromClipboard := flag.Bool("clipboard", false, "scan the clipboard instead of stdin")
	mustExist := flag.Bool("must-exist", false, "keep only targets whose file exists")
	flag.Parse()

	if err := run(*fromClipboard, *mustExist); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fromClipboard, mustExist bool) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	logger, err := logfile.Open(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	ed, err := editor.Select(cfg.Editor, cfg.Executable, cfg.Fallbacks, logger)
	if err != nil {
		return err
	}

	var store ports.HistoryStore
	if cfg.History {
		s, err := history.Open("")
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	text, err := readInput(fromClipboard)
	if err != nil {
		return err
	}

	cwd, _ := os.Getwd()
	candidates, err := commands.NewScanCommand(text, cwd, mustExist).Execute(context.Background())
	if err != nil {
		return err
	}

	app := tui.NewApp(ed, store, candidates)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !fromClipboard {
		// Stdin carried the scanned text; read keys from the terminal.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return app.Err()
}

func readInput(fromClipboard bool) (string, error) {
	if fromClipboard {
		return clipboard.ReadAll()
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
