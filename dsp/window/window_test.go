package window

import (
	"math"
	"testing"
)

func TestGenerateRectangular(t *testing.T) {
	coeffs := Generate(TypeRectangular, 8)
	if len(coeffs) != 8 {
		t.Fatalf("len = %d, want 8", len(coeffs))
	}
	for i, c := range coeffs {
		if c != 1 {
			t.Fatalf("coeff[%d] = %v, want 1", i, c)
		}
	}
}

func TestGenerateZeroLength(t *testing.T) {
	if coeffs := Generate(TypeHann, 0); coeffs != nil {
		t.Fatalf("Generate(0) = %v, want nil", coeffs)
	}
	if coeffs := Generate(TypeHann, -3); coeffs != nil {
		t.Fatalf("Generate(-3) = %v, want nil", coeffs)
	}
}

func TestHannSymmetric(t *testing.T) {
	coeffs := Generate(TypeHann, 33)

	if math.Abs(coeffs[0]) > 1e-12 || math.Abs(coeffs[32]) > 1e-12 {
		t.Fatalf("symmetric hann edges = %v, %v, want 0", coeffs[0], coeffs[32])
	}

	if math.Abs(coeffs[16]-1) > 1e-12 {
		t.Fatalf("symmetric hann midpoint = %v, want 1", coeffs[16])
	}

	for i := range coeffs {
		if d := math.Abs(coeffs[i] - coeffs[len(coeffs)-1-i]); d > 1e-12 {
			t.Fatalf("hann not symmetric at %d: %g", i, d)
		}
	}
}

func TestHannPeriodic(t *testing.T) {
	coeffs := Generate(TypeHann, 32, WithPeriodic())

	if math.Abs(coeffs[0]) > 1e-12 {
		t.Fatalf("periodic hann start = %v, want 0", coeffs[0])
	}

	if math.Abs(coeffs[16]-1) > 1e-12 {
		t.Fatalf("periodic hann midpoint = %v, want 1", coeffs[16])
	}
}

func TestApplyComplex(t *testing.T) {
	samples := []complex128{1 + 1i, 2, -3i}
	coeffs := []float64{0.5, 1, 2}

	out, err := ApplyComplex(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyComplex() error = %v", err)
	}

	want := []complex128{0.5 + 0.5i, 2, -6i}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if _, err := ApplyComplex(samples, []float64{1}); err == nil {
		t.Fatal("mismatched lengths should fail")
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	rect := Generate(TypeRectangular, 64)
	enbw, err := EquivalentNoiseBandwidth(rect)
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth() error = %v", err)
	}
	if math.Abs(enbw-1) > 1e-12 {
		t.Fatalf("rectangular ENBW = %v, want 1", enbw)
	}

	// Periodic Hann ENBW is exactly 1.5 bins.
	hann := Generate(TypeHann, 1024, WithPeriodic())
	enbw, err = EquivalentNoiseBandwidth(hann)
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth() error = %v", err)
	}
	if math.Abs(enbw-1.5) > 1e-9 {
		t.Fatalf("hann ENBW = %v, want 1.5", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("empty coefficients should fail")
	}
}

func TestCoherentGain(t *testing.T) {
	hann := Generate(TypeHann, 4096, WithPeriodic())
	gain, err := CoherentGain(hann)
	if err != nil {
		t.Fatalf("CoherentGain() error = %v", err)
	}
	if math.Abs(gain-0.5) > 1e-9 {
		t.Fatalf("hann coherent gain = %v, want 0.5", gain)
	}
}
