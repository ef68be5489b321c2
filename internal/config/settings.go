package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color modes accepted in monkey.yaml.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const DefaultPrompt = ">> "

// Settings is the content of monkey.yaml. Every field is optional.
type Settings struct {
	// Prompt printed by the console before each line.
	Prompt string `yaml:"prompt,omitempty"`

	// Color is one of auto, always, never. Auto colors only when the
	// output is a terminal.
	Color string `yaml:"color,omitempty"`

	// HistoryFile keeps console history between sessions. A relative path
	// is resolved against the directory holding monkey.yaml. Empty means
	// no history file.
	HistoryFile string `yaml:"history_file,omitempty"`

	// Trace turns on debug logging of calls and errors.
	Trace bool `yaml:"trace,omitempty"`
}

// DefaultSettings is what applies when no monkey.yaml is found.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.setDefaults("")
	return s
}

// LoadSettings reads and parses a monkey.yaml file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	return ParseSettings(data, path)
}

// ParseSettings parses monkey.yaml content from bytes. Unknown keys are
// rejected. The path is used for error messages and to resolve a relative
// history file.
func ParseSettings(data []byte, path string) (*Settings, error) {
	var s Settings

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.setDefaults(path)
	return &s, nil
}

// FindSettings searches for monkey.yaml starting from dir and walking up
// to parent directories. Returns "" and nil error if there is none.
func FindSettings(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Validate checks the settings for semantic errors.
func (s *Settings) Validate() error {
	switch s.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: unknown mode %q (want auto, always or never)", s.Color)
	}
	return nil
}

func (s *Settings) setDefaults(path string) {
	if s.Prompt == "" {
		s.Prompt = DefaultPrompt
	}
	if s.Color == "" {
		s.Color = ColorAuto
	}
	if s.HistoryFile != "" && path != "" && !filepath.IsAbs(s.HistoryFile) {
		s.HistoryFile = filepath.Join(filepath.Dir(path), s.HistoryFile)
	}
}

// UseColor resolves the color mode for an output that is or is not a
// terminal.
func (s *Settings) UseColor(isTerminal bool) bool {
	switch s.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
