package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {

	type test struct {
		push     []float64
		avg      float64
		sum      float64
		min      float64
		max      float64
		diff     float64
		variance float64
	}

	tests := map[string]test{
		"constant": {
			push:     []float64{2, 2, 2, 2},
			avg:      2,
			sum:      8,
			min:      2,
			max:      2,
			diff:     0,
			variance: 0,
		},
		"sequence": {
			push:     []float64{1, 2, 3, 4, 5},
			avg:      3,
			sum:      15,
			min:      1,
			max:      5,
			diff:     4,
			variance: 2,
		},
		"descending-loss": {
			push:     []float64{10, 5, 2.5, 1.25},
			avg:      4.6875,
			sum:      18.75,
			min:      1.25,
			max:      10,
			diff:     -8.75,
			variance: 11.23046875,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for _, v := range tt.push {
				stats.Push(v)
			}
			assert.Equal(t, len(tt.push), stats.Count())
			assert.InDelta(t, tt.avg, stats.Avg(), 1e-8)
			assert.InDelta(t, tt.sum, stats.Sum(), 1e-8)
			assert.InDelta(t, tt.min, stats.Min(), 1e-8)
			assert.InDelta(t, tt.max, stats.Max(), 1e-8)
			assert.InDelta(t, tt.diff, stats.Diff(), 1e-8)
			assert.InDelta(t, tt.variance, stats.Variance(), 1e-8)
		})
	}

}
