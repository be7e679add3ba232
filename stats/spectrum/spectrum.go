// Package spectrum computes statistics over two-sided magnitude spectra of
// complex baseband signals. Spectra are DC-centered: bin 0 corresponds to
// -sampleRate/2 and the frequency increases by sampleRate/len per bin.
package spectrum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/stat"
)

// Stats holds statistics computed from a two-sided magnitude spectrum.
type Stats struct {
	BinCount int
	BinWidth float64 // Hz per bin

	Peak     float64
	Peak_dB  float64
	PeakBin  int
	PeakFreq float64 // Hz, signed

	Min    float64
	MinBin int

	Sum    float64
	Energy float64 // sum of squared magnitudes
	Power  float64

	Mean     float64
	Variance float64
}

// toDB converts a linear magnitude to decibels.
// Returns -Inf for zero values.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// BinFrequency returns the signed frequency in Hz of bin i in a DC-centered
// spectrum with binCount bins.
func BinFrequency(i, binCount int, sampleRate float64) float64 {
	return (float64(i) - float64(binCount/2)) * sampleRate / float64(binCount)
}

// Shift reorders a raw FFT output so DC sits at the center bin, returning a
// new slice.
func Shift(raw []complex128) []complex128 {
	n := len(raw)
	out := make([]complex128, n)
	half := n / 2
	for i := range raw {
		out[i] = raw[(i+half)%n]
	}
	return out
}

// Magnitude converts a complex spectrum to linear magnitudes.
func Magnitude(spectrum []complex128) []float64 {
	mag := make([]float64, len(spectrum))
	for i, c := range spectrum {
		mag[i] = cmplx.Abs(c)
	}
	return mag
}

// Calculate computes statistics from a DC-centered magnitude spectrum
// (linear scale, NOT dB).
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{Peak_dB: math.Inf(-1)}
	}

	var s Stats
	s.BinCount = n
	s.BinWidth = sampleRate / float64(n)

	s.Min = magnitude[0]
	s.Peak = magnitude[0]
	for i, v := range magnitude {
		s.Sum += v
		s.Energy += v * v
		if v > s.Peak {
			s.Peak = v
			s.PeakBin = i
		}
		if v < s.Min {
			s.Min = v
			s.MinBin = i
		}
	}
	s.Peak_dB = toDB(s.Peak)
	s.PeakFreq = BinFrequency(s.PeakBin, n, sampleRate)
	s.Power = s.Energy / float64(n)

	s.Mean = stat.Mean(magnitude, nil)
	s.Variance = stat.Variance(magnitude, nil)

	return s
}

// CalculateFromComplex shifts a raw FFT output, converts it to magnitudes and
// delegates to [Calculate].
func CalculateFromComplex(raw []complex128, sampleRate float64) Stats {
	return Calculate(Magnitude(Shift(raw)), sampleRate)
}

// Peak describes a local maximum in a DC-centered magnitude spectrum.
type Peak struct {
	Bin       int
	Frequency float64 // Hz, signed
	Magnitude float64
}

// FindPeaks returns local maxima whose magnitude lies within floorDB of the
// global maximum, lowest frequency first. floorDB is expected to be negative
// (e.g. -20 keeps peaks no more than 20 dB below the strongest bin).
func FindPeaks(magnitude []float64, sampleRate, floorDB float64) []Peak {
	n := len(magnitude)
	if n < 3 {
		return nil
	}

	maxMag := 0.0
	for _, v := range magnitude {
		if v > maxMag {
			maxMag = v
		}
	}
	if maxMag == 0 {
		return nil
	}

	threshold := maxMag * math.Pow(10, floorDB/20)

	var peaks []Peak
	for i := 1; i < n-1; i++ {
		v := magnitude[i]
		if v < threshold {
			continue
		}
		if v >= magnitude[i-1] && v > magnitude[i+1] {
			peaks = append(peaks, Peak{
				Bin:       i,
				Frequency: BinFrequency(i, n, sampleRate),
				Magnitude: v,
			})
		}
	}

	return peaks
}
