package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sdr/dsp/iq"
)

// Generator creates deterministic complex baseband signals from a shared
// configuration.
type Generator struct {
	cfg  iq.StreamConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...iq.StreamOption) *Generator {
	return &Generator{
		cfg:  iq.ApplyStreamOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with
// signal-specific options.
func NewGeneratorWithOptions(streamOpts []iq.StreamOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  iq.ApplyStreamOptions(streamOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator stream configuration.
func (g *Generator) Config() iq.StreamConfig {
	return g.cfg
}

// Tone generates a complex exponential at freqHz. Negative frequencies
// produce a downward-rotating phasor.
func (g *Generator) Tone(freqHz, amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("tone sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]complex128, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		sin, cos := math.Sincos(step * float64(i))
		out[i] = complex(amplitude*cos, amplitude*sin)
	}
	return out, nil
}

// Constant generates a block of identical samples.
func (g *Generator) Constant(value complex128, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("constant samples must be > 0: %d", samples)
	}
	out := make([]complex128, samples)
	for i := range out {
		out[i] = value
	}
	return out, nil
}

// Impulse generates a unit impulse scaled by amplitude at sample 0.
func (g *Generator) Impulse(amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	out := make([]complex128, samples)
	out[0] = complex(amplitude, 0)
	return out, nil
}

// WhiteNoise generates deterministic complex noise with independent uniform
// real and imaginary parts in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]complex128, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out, nil
}

// Normalize scales data to target peak magnitude and returns a new slice.
func Normalize(data []complex128, targetPeak float64) ([]complex128, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := iq.PeakMagnitude(data)

	out := make([]complex128, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := complex(targetPeak/maxAbs, 0)
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
