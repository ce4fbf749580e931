package sensor

// Ring is a fixed-capacity circular buffer of distance samples.
type Ring struct {
	buf   []float64
	pos   int
	count int
}

// NewRing creates a ring holding at most capacity samples.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		buf: make([]float64, capacity),
	}
}

// Push adds a sample, overwriting the oldest once full.
func (r *Ring) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored samples, oldest first.
func (r *Ring) Values() []float64 {
	if r == nil || r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Last returns the most recent sample, or 0 if empty.
func (r *Ring) Last() float64 {
	if r == nil || r.count == 0 {
		return 0
	}
	return r.buf[(r.pos-1+len(r.buf))%len(r.buf)]
}

// Len returns the number of stored samples.
func (r *Ring) Len() int {
	if r == nil {
		return 0
	}
	return r.count
}
