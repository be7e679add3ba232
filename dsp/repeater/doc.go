// Package repeater provides a bandwidth-fill spectral repeater: a 1:1-rate
// complex baseband block that fills a wide output bandwidth with evenly
// spaced frequency-shifted copies of a narrowband input.
//
// Given input bandwidth B_in and output bandwidth B_out, the block derives
//
//	numCopies    = max(1, floor(B_out / B_in))
//	shiftSpacing = B_out / numCopies
//
// and produces, for each input block,
//
//	out[k] = sum_i in[k] * exp(j*2*pi*f_i*t[k])    f_i = -B_out + i*shiftSpacing
//
// where t is derived from a sample cursor that advances monotonically across
// calls, so mixer phases stay continuous for the lifetime of the block.
//
// The summation is raw by default: output peak amplitude grows with the
// number of copies. Opt into power normalization with WithNormalization.
//
// # Usage
//
//	rep, _ := repeater.New(
//	    repeater.WithInputBandwidth(12e3),
//	    repeater.WithOutputBandwidth(20e6),
//	    repeater.WithSampleRate(20e6),
//	)
//	out := rep.Process(block) // len(out) == len(block)
package repeater
