package iq

import (
	"math"
	"math/cmplx"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether complex samples a and b are equal within eps.
func NearlyEqual(a, b complex128, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := cmplx.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(cmplx.Abs(a), cmplx.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Power returns the mean squared magnitude of buf.
// Returns 0 for an empty buffer.
func Power(buf []complex128) float64 {
	if len(buf) == 0 {
		return 0
	}

	var sum float64
	for _, v := range buf {
		re := real(v)
		im := imag(v)
		sum += re*re + im*im
	}

	return sum / float64(len(buf))
}

// PeakMagnitude returns the largest sample magnitude in buf.
func PeakMagnitude(buf []complex128) float64 {
	var peak float64
	for _, v := range buf {
		if m := cmplx.Abs(v); m > peak {
			peak = m
		}
	}

	return peak
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// DBPowerToLinear converts dB to linear power (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// IsFinite reports whether the sample contains no NaN or Inf component.
func IsFinite(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
}
