package vector

// stats counts storage events over a vector's lifetime.
type stats struct {
	allocations   int
	reallocations int
	relocated     int
	rollbacks     int
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if len(v.data) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.data))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:          v.size,
		Capacity:      len(v.data),
		Utilization:   v.Utilization(),
		Allocations:   v.stats.allocations,
		Reallocations: v.stats.reallocations,
		Relocated:     v.stats.relocated,
		Rollbacks:     v.stats.rollbacks,
	}
}

// Metrics contains statistical information about a vector. The counters are
// diagnostics: a rolled-back operation still counts its attempt.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Utilization   float64 // Ratio of live elements to slots (0.0-1.0)
	Allocations   int     // Blocks obtained
	Reallocations int     // Blocks replaced by a larger or smaller one
	Relocated     int     // Elements moved between blocks
	Rollbacks     int     // Reallocations abandoned after a failure
}
