package iq

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []complex128, n int) []complex128 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]complex128, n)
}

// Zero sets all samples in buf to 0.
func Zero(buf []complex128) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied samples.
func CopyInto(dst, src []complex128) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// Scale multiplies every sample in buf by the real factor s.
func Scale(buf []complex128, s float64) {
	c := complex(s, 0)
	for i := range buf {
		buf[i] *= c
	}
}
