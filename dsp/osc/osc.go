package osc

import (
	"fmt"
	"math"
)

// Mixer produces a complex exponential carrier exp(j*2*pi*f*t) referenced to
// an absolute sample index. Because the phase is a function of the index
// rather than of accumulated state, several mixers can share one time base
// and a mixer can resume at any index without a phase jump.
type Mixer struct {
	sampleRate float64
	freqHz     float64
}

// NewMixer creates a mixer for the given carrier frequency.
// Negative frequencies select the conjugate carrier (downward shift).
func NewMixer(sampleRate, freqHz float64) (*Mixer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("mixer sample rate must be > 0 and finite: %f", sampleRate)
	}
	if math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		return nil, fmt.Errorf("mixer frequency must be finite: %f", freqHz)
	}

	return &Mixer{
		sampleRate: sampleRate,
		freqHz:     freqHz,
	}, nil
}

// SetFrequency replaces the carrier frequency.
func (m *Mixer) SetFrequency(freqHz float64) error {
	if math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		return fmt.Errorf("mixer frequency must be finite: %f", freqHz)
	}
	m.freqHz = freqHz
	return nil
}

// Frequency returns the carrier frequency in Hz.
func (m *Mixer) Frequency() float64 { return m.freqHz }

// SampleRate returns the sample rate in Hz.
func (m *Mixer) SampleRate() float64 { return m.sampleRate }

// At returns the carrier sample at the absolute sample index.
func (m *Mixer) At(index uint64) complex128 {
	angle := 2 * math.Pi * m.freqHz * (float64(index) / m.sampleRate)
	sin, cos := math.Sincos(angle)
	return complex(cos, sin)
}

// Tone fills dst with carrier samples starting at absolute sample index start.
func (m *Mixer) Tone(dst []complex128, start uint64) {
	for k := range dst {
		dst[k] = m.At(start + uint64(k))
	}
}

// MixTo writes in multiplied by the carrier into dst, starting at absolute
// sample index start. dst and in must have equal length.
func (m *Mixer) MixTo(dst, in []complex128, start uint64) error {
	if len(dst) != len(in) {
		return fmt.Errorf("mixer buffer length mismatch: dst=%d in=%d", len(dst), len(in))
	}

	for k := range in {
		dst[k] = in[k] * m.At(start+uint64(k))
	}

	return nil
}

// MixAccumulate adds in multiplied by the carrier into dst, starting at
// absolute sample index start. dst and in must have equal length.
func (m *Mixer) MixAccumulate(dst, in []complex128, start uint64) error {
	if len(dst) != len(in) {
		return fmt.Errorf("mixer buffer length mismatch: dst=%d in=%d", len(dst), len(in))
	}

	for k := range in {
		dst[k] += in[k] * m.At(start+uint64(k))
	}

	return nil
}
