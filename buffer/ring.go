package buffer

// Ring is a ring buffer keeping the last x values of a series.
// TODO : use container/ring
type Ring struct {
	index  int
	count  int
	values []float64
}

// NewRing creates a new ring with the given buffer size.
func NewRing(size int) *Ring {
	return &Ring{
		values: make([]float64, size),
	}
}

// Size returns the number of elements within the ring.
func (r *Ring) Size() int {
	if r.count < len(r.values) {
		return r.count
	}
	return len(r.values)
}

// Push adds a value to the ring, evicting the oldest one if the ring is full.
func (r *Ring) Push(v float64) {
	r.values[r.index] = v
	r.index = r.next(r.index)
	r.count++
}

func (r *Ring) next(index int) int {
	return (index + 1) % len(r.values)
}

// Get returns the ring values ordered from oldest to newest.
func (r *Ring) Get() []float64 {

	l := r.Size()

	v := make([]float64, l)
	for i := 0; i < l; i++ {
		idx := i
		if r.count > l {
			// the write index points at the oldest element once the ring is full
			idx = (r.index + i) % l
		}
		v[i] = r.values[idx]
	}
	return v
}
