// Package fill measures the spectral content of a bandwidth-fill repeater
// output: it locates the frequency-shifted carriers in a block of complex
// baseband samples and reports their offsets, spacing and power.
package fill

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-sdr/dsp/iq"
	"github.com/cwbudde/algo-sdr/dsp/window"
	"github.com/cwbudde/algo-sdr/stats/spectrum"
)

const defaultPeakFloorDB = -30.0

// Config holds fill analysis parameters.
type Config struct {
	SampleRate  float64
	FFTSize     int // 0 selects the next power of two above the block length
	WindowType  window.Type
	PeakFloorDB float64 // negative; 0 selects the default -30 dB
}

// Result holds fill measurement results.
type Result struct {
	CopyCount int       // number of detected carriers
	Offsets   []float64 // detected carrier offsets in Hz, lowest first
	Spacing   float64   // mean spacing between adjacent carriers in Hz
	Stats     spectrum.Stats
}

// Analyzer performs fill analysis on complex baseband blocks. Scratch
// buffers are reused across calls; an Analyzer is not safe for concurrent
// use.
type Analyzer struct {
	cfg Config

	inData []complex128
	out    []complex128
}

// NewAnalyzer creates a fill analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 1
	}
	if cfg.PeakFloorDB >= 0 {
		cfg.PeakFloorDB = defaultPeakFloorDB
	}
	return &Analyzer{cfg: cfg}
}

// AnalyzeBlock windows the block, transforms it and locates the carriers.
func (a *Analyzer) AnalyzeBlock(block []complex128) (Result, error) {
	if len(block) == 0 {
		return Result{}, fmt.Errorf("fill: empty block")
	}

	cfg := a.cfg

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(block))
	}

	n := len(block)
	if n > fftSize {
		n = fftSize
	}

	coeffs := window.Generate(cfg.WindowType, n, window.WithPeriodic())
	windowed, err := window.ApplyComplex(block[:n], coeffs)
	if err != nil {
		return Result{}, err
	}

	a.inData = iq.EnsureLen(a.inData, fftSize)
	iq.Zero(a.inData)
	iq.CopyInto(a.inData, windowed)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("fill: %w", err)
	}

	a.out = iq.EnsureLen(a.out, fftSize)
	if err := plan.Forward(a.out, a.inData); err != nil {
		return Result{}, fmt.Errorf("fill: %w", err)
	}

	mag := spectrum.Magnitude(spectrum.Shift(a.out))
	stats := spectrum.Calculate(mag, cfg.SampleRate)
	peaks := spectrum.FindPeaks(mag, cfg.SampleRate, cfg.PeakFloorDB)

	res := Result{
		CopyCount: len(peaks),
		Offsets:   make([]float64, len(peaks)),
		Stats:     stats,
	}
	for i, p := range peaks {
		res.Offsets[i] = p.Frequency
	}

	if len(res.Offsets) >= 2 {
		span := res.Offsets[len(res.Offsets)-1] - res.Offsets[0]
		res.Spacing = span / float64(len(res.Offsets)-1)
	}

	return res, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
