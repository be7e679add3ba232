package iq

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1+1i, 1+1i, 0) {
		t.Fatal("identical samples should be nearly equal")
	}

	if !NearlyEqual(1, 1+1e-15i, 1e-12) {
		t.Fatal("samples within eps should be nearly equal")
	}

	if NearlyEqual(1, 1.01, 1e-12) {
		t.Fatal("samples outside eps should not be nearly equal")
	}
}

func TestPower(t *testing.T) {
	if p := Power(nil); p != 0 {
		t.Fatalf("Power(nil) = %v, want 0", p)
	}

	// |1|^2 = 1, |i|^2 = 1, |3+4i|^2 = 25 -> mean 9.
	p := Power([]complex128{1, 1i, 3 + 4i})
	if math.Abs(p-9) > 1e-12 {
		t.Fatalf("Power = %v, want 9", p)
	}
}

func TestPeakMagnitude(t *testing.T) {
	peak := PeakMagnitude([]complex128{1, -2i, 3 + 4i})
	if math.Abs(peak-5) > 1e-12 {
		t.Fatalf("PeakMagnitude = %v, want 5", peak)
	}
}

func TestPowerDBRoundTrip(t *testing.T) {
	for _, db := range []float64{-30, -3, 0, 10} {
		got := LinearPowerToDB(DBPowerToLinear(db))
		if math.Abs(got-db) > 1e-9 {
			t.Fatalf("round trip %v dB -> %v", db, got)
		}
	}

	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("LinearPowerToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("LinearPowerToDB(-1) should be NaN")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1 + 2i) {
		t.Fatal("finite sample reported as non-finite")
	}

	if IsFinite(complex(math.NaN(), 0)) {
		t.Fatal("NaN sample reported as finite")
	}

	if IsFinite(complex(math.Inf(1), 0)) {
		t.Fatal("Inf sample reported as finite")
	}
}
