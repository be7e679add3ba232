// Command fillinfo prints the replication plan of a bandwidth-fill spectral
// repeater for one or more input bandwidths.
//
// Usage:
//
//	fillinfo [flags] [input-bandwidth-hz ...]
//
// Without arguments it prints the plan for the default 12 kHz input.
//
// Examples:
//
//	fillinfo 12e3 25e3 100e3
//	fillinfo -out 10e6 12500
//	fillinfo -offsets 5e6
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-sdr/dsp/repeater"
)

func main() {
	outBW := flag.Float64("out", 20e6, "output bandwidth in Hz")
	rate := flag.Float64("rate", 0, "sample rate in Hz (0 uses the output bandwidth)")
	offsets := flag.Bool("offsets", false, "print per-copy carrier offsets (single bandwidth only)")
	limit := flag.Int("limit", 16, "maximum offset rows to print with -offsets (0 prints all)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fillinfo [flags] [input-bandwidth-hz ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the replication plan of a bandwidth-fill spectral repeater.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the plan for a 12 kHz input.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fillinfo 12e3 25e3 100e3\n")
		fmt.Fprintf(os.Stderr, "  fillinfo -out 10e6 12500\n")
		fmt.Fprintf(os.Stderr, "  fillinfo -offsets 5e6\n")
	}
	flag.Parse()

	sampleRate := *rate
	if sampleRate <= 0 {
		sampleRate = *outBW
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"12e3"}
	}

	bandwidths := parseBandwidths(args)
	if len(bandwidths) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid input bandwidths\n")
		os.Exit(1)
	}

	if *offsets {
		if len(bandwidths) != 1 {
			fmt.Fprintf(os.Stderr, "error: -offsets expects exactly one input bandwidth\n")
			os.Exit(1)
		}
		printOffsets(bandwidths[0], *outBW, sampleRate, *limit)
		return
	}

	printPlans(bandwidths, *outBW, sampleRate)
}

func parseBandwidths(args []string) []float64 {
	var out []float64
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || v <= 0 {
			fmt.Fprintf(os.Stderr, "warning: skipping invalid bandwidth %q\n", a)
			continue
		}
		out = append(out, v)
	}
	return out
}

func newRepeater(inBW, outBW, sampleRate float64) (*repeater.Repeater, error) {
	return repeater.New(
		repeater.WithInputBandwidth(inBW),
		repeater.WithOutputBandwidth(outBW),
		repeater.WithSampleRate(sampleRate),
	)
}

func printPlans(bandwidths []float64, outBW, sampleRate float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Input BW [Hz]\tOutput BW [Hz]\tCopies\tSpacing [Hz]\tPeak Gain [dB]\n")
	fmt.Fprintf(tw, "-------------\t--------------\t------\t------------\t--------------\n")

	for _, inBW := range bandwidths {
		rep, err := newRepeater(inBW, outBW, sampleRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		peakGainDB := 20 * math.Log10(float64(rep.NumCopies()))
		fmt.Fprintf(tw, "%.1f\t%.1f\t%d\t%.2f\t%.2f\n",
			inBW, outBW, rep.NumCopies(), rep.ShiftSpacing(), peakGainDB)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printOffsets(inBW, outBW, sampleRate float64, limit int) {
	rep, err := newRepeater(inBW, outBW, sampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	offsets := rep.CopyOffsets()
	fmt.Printf("copies=%d spacing=%.2f Hz\n", rep.NumCopies(), rep.ShiftSpacing())

	n := len(offsets)
	if limit > 0 && n > limit {
		n = limit
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Copy\tOffset [Hz]\n")
	fmt.Fprintf(tw, "----\t-----------\n")
	for i := range n {
		fmt.Fprintf(tw, "%d\t%.2f\n", i, offsets[i])
	}
	if n < len(offsets) {
		fmt.Fprintf(tw, "...\t(%d more)\n", len(offsets)-n)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
