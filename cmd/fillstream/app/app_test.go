package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-sdr/dsp/repeater"
	"github.com/cwbudde/algo-sdr/sdrio"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPumpProcessesWholeStream(t *testing.T) {
	rep, err := repeater.New(
		repeater.WithInputBandwidth(1e3),
		repeater.WithOutputBandwidth(4e3),
		repeater.WithSampleRate(16e3),
	)
	if err != nil {
		t.Fatalf("repeater.New() error = %v", err)
	}

	// 100 samples through a 64-sample pump: one full block and a short tail.
	src := make([]complex128, 100)
	for i := range src {
		src[i] = 1
	}

	var in bytes.Buffer
	if err := sdrio.NewWriter(&in).WriteBlock(src); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}

	var out bytes.Buffer
	if err := pump(context.Background(), rep, &in, &out, 64, discardLogger()); err != nil {
		t.Fatalf("pump() error = %v", err)
	}

	if got := out.Len(); got != len(src)*sdrio.SampleSize {
		t.Fatalf("output is %d bytes, want %d", got, len(src)*sdrio.SampleSize)
	}

	decoded := make([]complex128, len(src))
	n, err := sdrio.NewReader(&out).ReadBlock(decoded)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadBlock() error = %v", err)
	}
	if n != len(src) {
		t.Fatalf("decoded %d samples, want %d", n, len(src))
	}

	// At cursor 0 all four copies sum coherently.
	if d := cmplx.Abs(decoded[0] - 4); d > 1e-5 {
		t.Fatalf("first output sample = %v, want 4", decoded[0])
	}

	if got := rep.Cursor(); got != uint64(len(src)) {
		t.Fatalf("Cursor() = %d, want %d", got, len(src))
	}
}

func TestPumpStopsOnCancel(t *testing.T) {
	rep, err := repeater.New()
	if err != nil {
		t.Fatalf("repeater.New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var in, out bytes.Buffer
	if err := sdrio.NewWriter(&in).WriteBlock(make([]complex128, 256)); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}

	if err := pump(ctx, rep, &in, &out, 64, discardLogger()); err != nil {
		t.Fatalf("pump() error = %v", err)
	}

	if out.Len() != 0 {
		t.Fatalf("canceled pump wrote %d bytes, want 0", out.Len())
	}
}

func TestPumpEmptyStream(t *testing.T) {
	rep, err := repeater.New()
	if err != nil {
		t.Fatalf("repeater.New() error = %v", err)
	}

	var in, out bytes.Buffer
	if err := pump(context.Background(), rep, &in, &out, 64, discardLogger()); err != nil {
		t.Fatalf("pump() error = %v", err)
	}

	if out.Len() != 0 {
		t.Fatalf("empty stream produced %d bytes", out.Len())
	}
}
