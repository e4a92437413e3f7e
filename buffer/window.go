package buffer

// Window groups a series into buckets of a fixed number of values.
// It exposes the aggregate Stats of each bucket as it closes.
type Window struct {
	size    int
	current *Stats
}

// NewWindow creates a new window with buckets of the given size.
func NewWindow(size int) *Window {
	return &Window{
		size:    size,
		current: NewStats(),
	}
}

// Push adds a value to the window.
// It returns the bucket stats and true when the value closed the current bucket.
// (Note that a bucket closes on its last value, not on the first of the next one)
func (w *Window) Push(v float64) (Stats, bool) {
	w.current.Push(v)
	if w.current.Count() >= w.size {
		bucket := *w.current
		w.current = NewStats()
		return bucket, true
	}
	return Stats{}, false
}

// Current returns the stats of the bucket still accumulating values.
func (w *Window) Current() Stats {
	return *w.current
}
