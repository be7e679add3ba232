package repeater

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/cwbudde/algo-sdr/dsp/iq"
	"github.com/cwbudde/algo-sdr/dsp/osc"
)

// plan is an immutable configuration snapshot together with the replication
// parameters derived from it. It is replaced wholesale on update so a reader
// can never observe a spacing that is stale relative to the bandwidth.
type plan struct {
	inputBandwidth  float64
	outputBandwidth float64
	sampleRate      float64

	numCopies    int
	shiftSpacing float64
	mixers       []*osc.Mixer
}

// derivePlan computes the replication parameters and one mixer per copy.
// Copy i sits at -outputBandwidth + i*shiftSpacing.
func derivePlan(inputBW, outputBW, sampleRate float64) (*plan, error) {
	numCopies := int(math.Floor(outputBW / inputBW))
	if numCopies < 1 {
		numCopies = 1
	}
	spacing := outputBW / float64(numCopies)

	mixers := make([]*osc.Mixer, numCopies)
	for i := range mixers {
		shift := -outputBW + float64(i)*spacing
		m, err := osc.NewMixer(sampleRate, shift)
		if err != nil {
			return nil, err
		}
		mixers[i] = m
	}

	return &plan{
		inputBandwidth:  inputBW,
		outputBandwidth: outputBW,
		sampleRate:      sampleRate,
		numCopies:       numCopies,
		shiftSpacing:    spacing,
		mixers:          mixers,
	}, nil
}

// Repeater is a stateful 1:1-rate block that sums frequency-shifted copies
// of its input across the output bandwidth. The sample cursor advances with
// every processed block and is never reset; recreate the block to restart
// the time base.
type Repeater struct {
	mu        sync.Mutex
	plan      *plan
	cursor    uint64
	normalize bool
	logger    *slog.Logger
}

// New creates a repeater. Defaults: 12 kHz input bandwidth, 20 MHz output
// bandwidth, unit sample rate, raw (non-normalized) summation.
func New(opts ...Option) (*Repeater, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	p, err := derivePlan(cfg.inputBandwidth, cfg.outputBandwidth, cfg.sampleRate)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Repeater{
		plan:      p,
		normalize: cfg.normalize,
		logger:    logger,
	}, nil
}

// SetInputBandwidth replaces the input bandwidth and re-derives the
// replication plan. Non-positive or non-finite values are rejected without
// touching the current plan.
func (r *Repeater) SetInputBandwidth(bw float64) error {
	if bw <= 0 || math.IsNaN(bw) || math.IsInf(bw, 0) {
		return fmt.Errorf("repeater input bandwidth must be > 0 and finite: %f", bw)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := derivePlan(bw, r.plan.outputBandwidth, r.plan.sampleRate)
	if err != nil {
		return err
	}
	r.plan = p

	r.logger.Info("input bandwidth updated",
		slog.Float64("inputBandwidth", p.inputBandwidth),
		slog.Int("numCopies", p.numCopies),
		slog.Float64("shiftSpacing", p.shiftSpacing),
	)

	return nil
}

// Process returns a new block holding the mix-and-sum of in across all
// copies. The output length always equals the input length.
func (r *Repeater) Process(in []complex128) []complex128 {
	out := make([]complex128, len(in))
	// Lengths match, processTo cannot fail.
	_ = r.ProcessTo(out, in)
	return out
}

// ProcessTo computes the mix-and-sum of in into dst, which must have the
// same length. The host owns both buffers; dst is fully overwritten.
func (r *Repeater) ProcessTo(dst, in []complex128) error {
	if len(dst) != len(in) {
		return fmt.Errorf("repeater buffer length mismatch: dst=%d in=%d", len(dst), len(in))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(in) == 0 {
		return nil
	}

	iq.Zero(dst)
	for _, m := range r.plan.mixers {
		// Equal lengths checked above.
		_ = m.MixAccumulate(dst, in, r.cursor)
	}

	if r.normalize && r.plan.numCopies > 1 {
		iq.Scale(dst, 1/float64(r.plan.numCopies))
	}

	r.cursor += uint64(len(in))

	return nil
}

// InputBandwidth returns the configured input bandwidth in Hz.
func (r *Repeater) InputBandwidth() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plan.inputBandwidth
}

// OutputBandwidth returns the configured output bandwidth in Hz.
func (r *Repeater) OutputBandwidth() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plan.outputBandwidth
}

// SampleRate returns the processing sample rate in Hz.
func (r *Repeater) SampleRate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plan.sampleRate
}

// NumCopies returns the derived number of frequency-shifted copies.
func (r *Repeater) NumCopies() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plan.numCopies
}

// ShiftSpacing returns the derived spacing between copies in Hz.
func (r *Repeater) ShiftSpacing() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plan.shiftSpacing
}

// Normalized reports whether output normalization is enabled.
func (r *Repeater) Normalized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.normalize
}

// Cursor returns the absolute sample index at which the next block starts.
func (r *Repeater) Cursor() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

// CopyOffsets returns the carrier offset of every copy in Hz, lowest first.
func (r *Repeater) CopyOffsets() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	offsets := make([]float64, r.plan.numCopies)
	for i := range offsets {
		offsets[i] = -r.plan.outputBandwidth + float64(i)*r.plan.shiftSpacing
	}
	return offsets
}
