package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultBlockSize = 4096

// Config represents the main application configuration.
type Config struct {
	Settings Settings       `yaml:"settings"`
	Repeater RepeaterConfig `yaml:"repeater"`
	Stream   StreamConfig   `yaml:"stream"`
}

// Settings represents global application settings.
type Settings struct {
	LogLevel string `yaml:"logLevel"`
}

// SlogLevel maps the configured log level name onto a slog level.
// Unknown names fall back to info.
func (s Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RepeaterConfig represents the spectral repeater settings.
type RepeaterConfig struct {
	InputBandwidth  float64 `yaml:"inputBandwidth"`
	OutputBandwidth float64 `yaml:"outputBandwidth"`
	SampleRate      float64 `yaml:"sampleRate"`
	Normalize       bool    `yaml:"normalize"`
}

// StreamConfig represents the sample stream settings. Input and Output are
// file paths; "-" or empty selects stdin/stdout.
type StreamConfig struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	BlockSize int    `yaml:"blockSize"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	config := Config{
		Repeater: RepeaterConfig{
			InputBandwidth:  12e3,
			OutputBandwidth: 20e6,
			SampleRate:      20e6,
		},
		Stream: StreamConfig{
			Input:     "-",
			Output:    "-",
			BlockSize: defaultBlockSize,
		},
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.Repeater.InputBandwidth <= 0 {
		return fmt.Errorf("repeater.inputBandwidth must be > 0: %f", c.Repeater.InputBandwidth)
	}
	if c.Repeater.OutputBandwidth <= 0 {
		return fmt.Errorf("repeater.outputBandwidth must be > 0: %f", c.Repeater.OutputBandwidth)
	}
	if c.Repeater.SampleRate <= 0 {
		return fmt.Errorf("repeater.sampleRate must be > 0: %f", c.Repeater.SampleRate)
	}
	if c.Stream.BlockSize <= 0 {
		return fmt.Errorf("stream.blockSize must be > 0: %d", c.Stream.BlockSize)
	}
	return nil
}
