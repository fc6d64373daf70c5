package buffer

// Buffer wraps a float64 slice with reuse-friendly semantics.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	// The backing array may hold stale data from earlier use.
	if n > oldLen {
		clear(b.samples[oldLen:n])
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}
