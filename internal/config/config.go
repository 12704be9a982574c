package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Output formats of the datfile tool.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Tool holds all configuration for the datfile tool.
type Tool struct {
	// Output is the text format of dumped files: "yaml" or "json".
	Output string `yaml:"output"`

	// Workers is the number of files decoded at once.
	Workers int `yaml:"workers"`

	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`

	// RawSeries disables opcode decoding of event series.
	RawSeries bool `yaml:"raw_series"`

	// Formats restricts format detection to the named formats. Empty
	// means every registered format.
	Formats []string `yaml:"formats"`
}

// DefaultTool returns Tool config with sensible defaults.
func DefaultTool() Tool {
	return Tool{
		Output:   OutputYAML,
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
	}
}

// LoadTool loads tool config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadTool(path string) (Tool, error) {
	cfg := DefaultTool()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (t Tool) Validate() error {
	switch t.Output {
	case OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q", t.Output)
	}
	if t.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", t.Workers)
	}
	return nil
}

// Level converts LogLevel to slog.Level.
// Defaults to Info if invalid or empty.
func (t Tool) Level() slog.Level {
	switch t.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
