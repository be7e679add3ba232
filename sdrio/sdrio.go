// Package sdrio reads and writes raw complex baseband sample streams in the
// interleaved little-endian complex64 format (cf32) that SDR tools exchange
// over pipes and files.
package sdrio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// SampleSize is the encoded size of one complex64 sample in bytes.
const SampleSize = 8

// Reader decodes cf32 samples from an io.Reader.
type Reader struct {
	r   io.Reader
	buf []byte
}

// NewReader creates a cf32 sample reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadBlock fills dst with decoded samples and returns the number of samples
// read. A short read at end of stream returns the complete samples together
// with io.EOF; a stream ending mid-sample returns io.ErrUnexpectedEOF.
func (r *Reader) ReadBlock(dst []complex128) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * SampleSize
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	buf := r.buf[:need]

	read, err := io.ReadFull(r.r, buf)
	samples := read / SampleSize

	for i := range samples {
		re := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*SampleSize:]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*SampleSize+4:]))
		dst[i] = complex(float64(re), float64(im))
	}

	switch {
	case err == nil:
		return samples, nil
	case err == io.ErrUnexpectedEOF && read%SampleSize != 0:
		return samples, fmt.Errorf("sdrio: stream ends mid-sample (%d trailing bytes): %w",
			read%SampleSize, io.ErrUnexpectedEOF)
	case err == io.ErrUnexpectedEOF:
		return samples, io.EOF
	default:
		return samples, err
	}
}

// Writer encodes cf32 samples to an io.Writer.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter creates a cf32 sample writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteBlock encodes and writes all samples in src.
func (w *Writer) WriteBlock(src []complex128) error {
	if len(src) == 0 {
		return nil
	}

	need := len(src) * SampleSize
	if cap(w.buf) < need {
		w.buf = make([]byte, need)
	}
	buf := w.buf[:need]

	for i, v := range src {
		binary.LittleEndian.PutUint32(buf[i*SampleSize:], math.Float32bits(float32(real(v))))
		binary.LittleEndian.PutUint32(buf[i*SampleSize+4:], math.Float32bits(float32(imag(v))))
	}

	if _, err := w.w.Write(buf); err != nil {
		return fmt.Errorf("sdrio: write: %w", err)
	}

	return nil
}
