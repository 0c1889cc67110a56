package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/huddle-tui/huddle/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Picker actions
	Toggle   key.Binding
	Select   key.Binding
	Search   key.Binding
	DeptNext key.Binding
	RoleNext key.Binding
	Remove   key.Binding
	Clear    key.Binding
	Retry    key.Binding

	// General
	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		DeptNext: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "department"),
		),
		RoleNext: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "role"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Retry: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "retry"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Up != "" {
		km.Up = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		)
	}
	if cfg.Down != "" {
		km.Down = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		)
	}
	if cfg.Toggle != "" {
		km.Toggle = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Toggle)...),
			key.WithHelp(cfg.Toggle, "toggle"),
		)
	}
	if cfg.Select != "" {
		km.Select = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Select)...),
			key.WithHelp(cfg.Select, "select"),
		)
	}
	if cfg.Search != "" {
		km.Search = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Search)...),
			key.WithHelp(cfg.Search, "search"),
		)
	}
	if cfg.DeptNext != "" {
		km.DeptNext = key.NewBinding(
			key.WithKeys(parseKeys(cfg.DeptNext)...),
			key.WithHelp(cfg.DeptNext, "department"),
		)
	}
	if cfg.RoleNext != "" {
		km.RoleNext = key.NewBinding(
			key.WithKeys(parseKeys(cfg.RoleNext)...),
			key.WithHelp(cfg.RoleNext, "role"),
		)
	}
	if cfg.Remove != "" {
		km.Remove = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Remove)...),
			key.WithHelp(cfg.Remove, "remove"),
		)
	}
	if cfg.Clear != "" {
		km.Clear = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Clear)...),
			key.WithHelp(cfg.Clear, "clear"),
		)
	}
	if cfg.Retry != "" {
		km.Retry = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Retry)...),
			key.WithHelp(cfg.Retry, "retry"),
		)
	}
	if cfg.Help != "" {
		km.Help = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "help"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		if p == " " {
			// A literal space is a valid binding and must survive trimming.
			keys = append(keys, p)
			continue
		}
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
