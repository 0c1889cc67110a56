package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/huddle-tui/huddle/internal/app"
	"github.com/huddle-tui/huddle/internal/config"
	"github.com/huddle-tui/huddle/internal/debug"
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "--debug" {
			if err := debug.Enable(debug.DefaultPath()); err != nil {
				fmt.Fprintf(os.Stderr, "Error enabling debug log: %v\n", err)
			}
			defer debug.Close()
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	for _, warning := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	// Create and run the application
	model := app.New(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(app.Model); ok {
		if m.ShouldQuit() {
			os.Exit(0)
		}
	}
}
