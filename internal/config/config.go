// Package config handles huddle configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents huddle configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Picker  PickerConfig  `toml:"picker"`
	Timing  TimingConfig  `toml:"timing"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeysConfig    `toml:"keys"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// Path to the roster YAML file (empty = ./roster.yaml)
	RosterPath string `toml:"roster_path"`

	// Id of the person running huddle; required for management sort
	CurrentUser string `toml:"current_user"`
}

// PickerConfig contains roster picker settings.
type PickerConfig struct {
	// Selection mode: "single" or "multiple"
	Mode string `toml:"mode"`

	// Maximum selected people in multiple mode (0 = unlimited)
	MaxSelected int `toml:"max_selected"`

	// Whether re-selecting the sole single-mode pick clears it
	AllowClear bool `toml:"allow_clear"`

	// Sort order: "none", "alphabetical", or "management"
	Sort string `toml:"sort"`

	// Show the department filter control
	DepartmentFilter bool `toml:"department_filter"`

	// Show the role filter control
	RoleFilter bool `toml:"role_filter"`

	// Initial department filter; applied once, only if it is a valid
	// option, and never over an explicit user choice
	DefaultDepartment string `toml:"default_department"`

	// Name rendering: "auto" (follow terminal width), "full", or "compact"
	Compact string `toml:"compact"`

	// Terminal width at or below which "auto" renders compact names
	NarrowWidth int `toml:"narrow_width"`
}

// TimingConfig contains the deferred-effect delays for single-mode
// selection: the popover collapses after CloseDelayMS and the trigger
// regains focus after RefocusDelayMS, which must be the longer of the
// two so refocusing never races the collapse.
type TimingConfig struct {
	CloseDelayMS   int `toml:"close_delay_ms"`
	RefocusDelayMS int `toml:"refocus_delay_ms"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Show titles next to names in the picker list
	ShowTitles bool `toml:"show_titles"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	Toggle   string `toml:"toggle"`
	Select   string `toml:"select"`
	Search   string `toml:"search"`
	DeptNext string `toml:"dept_next"`
	RoleNext string `toml:"role_next"`
	Remove   string `toml:"remove"`
	Clear    string `toml:"clear"`
	Retry    string `toml:"retry"`
	Help     string `toml:"help"`
	Quit     string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			RosterPath: "roster.yaml",
		},
		Picker: PickerConfig{
			Mode:             "multiple",
			MaxSelected:      0,
			AllowClear:       true,
			Sort:             "alphabetical",
			DepartmentFilter: true,
			RoleFilter:       true,
			Compact:          "auto",
			NarrowWidth:      60,
		},
		Timing: TimingConfig{
			CloseDelayMS:   150,
			RefocusDelayMS: 200,
		},
		UI: UIConfig{
			Theme:      "auto",
			ShowTitles: true,
		},
		Keys: KeysConfig{
			Up:       "up,k",
			Down:     "down,j",
			Toggle:   " ",
			Select:   "enter",
			Search:   "/",
			DeptNext: "d",
			RoleNext: "r",
			Remove:   "x",
			Clear:    "c",
			Retry:    "R",
			Help:     "?",
			Quit:     "q,ctrl+c",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/huddle/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "huddle", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "huddle", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "huddle", "config.toml")
	}
	return filepath.Join(configDir, "huddle", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Unmarshal directly into default config.
	// go-toml/v2 only overwrites fields present in the TOML file,
	// preserving defaults for unspecified fields (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to the config file.
func Save(cfg *Config) error {
	path := ConfigPath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Picker.Mode != "" &&
		c.Picker.Mode != "single" &&
		c.Picker.Mode != "multiple" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for picker.mode: %s (expected single or multiple)", c.Picker.Mode))
	}

	if c.Picker.MaxSelected < 0 {
		warnings = append(warnings, fmt.Sprintf("picker.max_selected must be >= 0, got %d", c.Picker.MaxSelected))
	}

	if c.Picker.Sort != "" &&
		c.Picker.Sort != "none" &&
		c.Picker.Sort != "alphabetical" &&
		c.Picker.Sort != "management" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for picker.sort: %s (expected none, alphabetical, or management)", c.Picker.Sort))
	}

	if c.Picker.Sort == "management" && c.General.CurrentUser == "" {
		warnings = append(warnings, "picker.sort is \"management\" but general.current_user is not set; falling back to roster order")
	}

	if c.Picker.Compact != "" &&
		c.Picker.Compact != "auto" &&
		c.Picker.Compact != "full" &&
		c.Picker.Compact != "compact" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for picker.compact: %s (expected auto, full, or compact)", c.Picker.Compact))
	}

	if c.Picker.NarrowWidth < 0 {
		warnings = append(warnings, fmt.Sprintf("picker.narrow_width must be >= 0, got %d", c.Picker.NarrowWidth))
	}

	if c.Timing.CloseDelayMS < 0 {
		warnings = append(warnings, fmt.Sprintf("timing.close_delay_ms must be >= 0, got %d", c.Timing.CloseDelayMS))
	}
	if c.Timing.RefocusDelayMS < c.Timing.CloseDelayMS {
		warnings = append(warnings, fmt.Sprintf("timing.refocus_delay_ms (%d) should be >= timing.close_delay_ms (%d) so focus restoration does not race the collapse", c.Timing.RefocusDelayMS, c.Timing.CloseDelayMS))
	}

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	return warnings
}

// CompactOverride translates picker.compact into the formatter's
// override: nil for "auto" (follow the width signal), otherwise the
// forced value.
func (c *Config) CompactOverride() *bool {
	switch c.Picker.Compact {
	case "full":
		v := false
		return &v
	case "compact":
		v := true
		return &v
	default:
		return nil
	}
}
