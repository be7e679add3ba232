package sdrio

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	src := []complex128{1 + 2i, -0.5, 0.25i, -3 - 4i}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBlock(src); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}

	if buf.Len() != len(src)*SampleSize {
		t.Fatalf("encoded %d bytes, want %d", buf.Len(), len(src)*SampleSize)
	}

	r := NewReader(&buf)
	dst := make([]complex128, len(src))
	n, err := r.ReadBlock(dst)
	if err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}
	if n != len(src) {
		t.Fatalf("read %d samples, want %d", n, len(src))
	}

	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("sample %d: got=%v want=%v", i, dst[i], src[i])
		}
	}
}

func TestReadBlockShortStream(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBlock([]complex128{1, 2i, 3}); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}

	r := NewReader(&buf)
	dst := make([]complex128, 8)
	n, err := r.ReadBlock(dst)
	if err != io.EOF {
		t.Fatalf("ReadBlock() error = %v, want io.EOF", err)
	}
	if n != 3 {
		t.Fatalf("read %d samples, want 3", n)
	}
	if dst[0] != 1 || dst[1] != 2i || dst[2] != 3 {
		t.Fatalf("unexpected samples: %v", dst[:3])
	}
}

func TestReadBlockTornSample(t *testing.T) {
	// Three full samples plus five stray bytes.
	raw := make([]byte, 3*SampleSize+5)

	r := NewReader(bytes.NewReader(raw))
	dst := make([]complex128, 8)
	n, err := r.ReadBlock(dst)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("ReadBlock() error = %v, want ErrUnexpectedEOF", err)
	}
	if n != 3 {
		t.Fatalf("read %d samples, want 3", n)
	}
}

func TestReadBlockEmptyDst(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	n, err := r.ReadBlock(nil)
	if n != 0 || err != nil {
		t.Fatalf("ReadBlock(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestWriteBlockPrecision(t *testing.T) {
	// Values survive the float64 -> float32 -> float64 round trip when they
	// are exactly representable in float32.
	src := []complex128{complex(math.Pi, 0)}

	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteBlock(src); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}

	dst := make([]complex128, 1)
	if _, err := NewReader(&buf).ReadBlock(dst); err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}

	want := float64(float32(math.Pi))
	if real(dst[0]) != want {
		t.Fatalf("got %v, want %v", real(dst[0]), want)
	}
}
