package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-sdr/dsp/repeater"
	"github.com/cwbudde/algo-sdr/sdrio"
)

// Run builds the repeater from the configuration and pumps samples from the
// input stream to the output stream until the input ends or ctx is canceled.
func Run(ctx context.Context, config *Config, logger *slog.Logger) error {
	rep, err := repeater.New(
		repeater.WithInputBandwidth(config.Repeater.InputBandwidth),
		repeater.WithOutputBandwidth(config.Repeater.OutputBandwidth),
		repeater.WithSampleRate(config.Repeater.SampleRate),
		repeater.WithNormalization(config.Repeater.Normalize),
		repeater.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create repeater: %w", err)
	}

	logger.Info("repeater configured",
		slog.Float64("inputBandwidth", rep.InputBandwidth()),
		slog.Float64("outputBandwidth", rep.OutputBandwidth()),
		slog.Int("numCopies", rep.NumCopies()),
		slog.Float64("shiftSpacing", rep.ShiftSpacing()),
	)

	in, closeIn, err := openInput(config.Stream.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(config.Stream.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	return pump(ctx, rep, in, out, config.Stream.BlockSize, logger)
}

// pump drives the repeater block-by-block. Blocks may come back shorter than
// blockSize near end of stream; the repeater accepts any length.
func pump(ctx context.Context, rep *repeater.Repeater, in io.Reader, out io.Writer, blockSize int, logger *slog.Logger) error {
	reader := sdrio.NewReader(in)
	writer := sdrio.NewWriter(out)

	inBlock := make([]complex128, blockSize)
	outBlock := make([]complex128, blockSize)

	var total uint64
	for {
		select {
		case <-ctx.Done():
			logger.Info("stream interrupted", slog.Uint64("samples", total))
			return nil
		default:
		}

		n, readErr := reader.ReadBlock(inBlock)
		if n > 0 {
			if err := rep.ProcessTo(outBlock[:n], inBlock[:n]); err != nil {
				return err
			}
			if err := writer.WriteBlock(outBlock[:n]); err != nil {
				return err
			}
			total += uint64(n)
		}

		if readErr == io.EOF {
			logger.Info("stream complete", slog.Uint64("samples", total))
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("reading samples: %w", readErr)
		}
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
