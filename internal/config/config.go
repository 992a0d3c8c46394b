// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolodex configuration.
type Config struct {
	UI   UI   `yaml:"ui"`
	Book Book `yaml:"book"`
}

// UI holds session presentation settings.
type UI struct {
	Plain  bool   `yaml:"plain"`  // Force plain text even on a TTY.
	Prompt string `yaml:"prompt"` // Input prompt shown before each command.
}

// Book holds address book behavior settings.
type Book struct {
	UpcomingWindowDays int `yaml:"upcoming_window_days"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Prompt: "Enter a command: ",
		},
		Book: Book{
			UpcomingWindowDays: 7,
		},
	}
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.UI.Prompt == "" {
		return errors.New("config: ui.prompt cannot be empty")
	}
	if c.Book.UpcomingWindowDays < 1 {
		return fmt.Errorf("config: book.upcoming_window_days must be at least 1, got %d", c.Book.UpcomingWindowDays)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLODEX_PLAIN, ROLODEX_PROMPT, ROLODEX_UPCOMING_WINDOW.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLODEX_PLAIN"); v != "" {
		plain, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_PLAIN %q: %w", v, err)
		}
		c.UI.Plain = plain
	}
	if v := os.Getenv("ROLODEX_PROMPT"); v != "" {
		c.UI.Prompt = v
	}
	if v := os.Getenv("ROLODEX_UPCOMING_WINDOW"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_UPCOMING_WINDOW %q: %w", v, err)
		}
		c.Book.UpcomingWindowDays = days
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI   *rawUI   `yaml:"ui"`
	Book *rawBook `yaml:"book"`
}

type rawUI struct {
	Plain  *bool   `yaml:"plain"`
	Prompt *string `yaml:"prompt"`
}

type rawBook struct {
	UpcomingWindowDays *int `yaml:"upcoming_window_days"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.UI != nil {
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
		if layer.UI.Prompt != nil {
			c.UI.Prompt = *layer.UI.Prompt
		}
	}
	if layer.Book != nil {
		if layer.Book.UpcomingWindowDays != nil {
			c.Book.UpcomingWindowDays = *layer.Book.UpcomingWindowDays
		}
	}
}
