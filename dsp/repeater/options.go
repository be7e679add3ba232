package repeater

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	defaultInputBandwidth  = 12e3
	defaultOutputBandwidth = 20e6
	defaultSampleRate      = 1.0
)

// Option mutates repeater construction parameters.
type Option func(*config) error

type config struct {
	inputBandwidth  float64
	outputBandwidth float64
	sampleRate      float64
	normalize       bool
	logger          *slog.Logger
}

func defaultConfig() config {
	return config{
		inputBandwidth:  defaultInputBandwidth,
		outputBandwidth: defaultOutputBandwidth,
		sampleRate:      defaultSampleRate,
	}
}

// WithInputBandwidth sets the bandwidth of the input signal in Hz.
func WithInputBandwidth(bw float64) Option {
	return func(cfg *config) error {
		if bw <= 0 || math.IsNaN(bw) || math.IsInf(bw, 0) {
			return fmt.Errorf("repeater input bandwidth must be > 0 and finite: %f", bw)
		}
		cfg.inputBandwidth = bw
		return nil
	}
}

// WithOutputBandwidth sets the target output bandwidth in Hz.
func WithOutputBandwidth(bw float64) Option {
	return func(cfg *config) error {
		if bw <= 0 || math.IsNaN(bw) || math.IsInf(bw, 0) {
			return fmt.Errorf("repeater output bandwidth must be > 0 and finite: %f", bw)
		}
		cfg.outputBandwidth = bw
		return nil
	}
}

// WithSampleRate sets the processing sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
			return fmt.Errorf("repeater sample rate must be > 0 and finite: %f", sampleRate)
		}
		cfg.sampleRate = sampleRate
		return nil
	}
}

// WithNormalization divides the summed output by the copy count, keeping
// output power comparable to the input. Off by default: the raw sum is the
// block's native behavior.
func WithNormalization(enabled bool) Option {
	return func(cfg *config) error {
		cfg.normalize = enabled
		return nil
	}
}

// WithLogger sets the logger used for configuration-change notifications.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("repeater logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}
