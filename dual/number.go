package dual

// Number is a storage-only dual element: one primal value plus a fixed
// number of partial-derivative slots. It carries no arithmetic; AD
// packages bring their own operations and only share the shape.
type Number struct {
	Value    float64
	Partials []float64
}

// Layout returns the depth-1 layout describing this element.
func (d Number) Layout() Layout {
	return Chunk(len(d.Partials))
}

// Numbers allocates n dual elements with partialCount slots each. All
// partial slots share one contiguous backing array, so the result costs
// two allocations regardless of n.
func Numbers(n, partialCount int) []Number {
	if n < 0 {
		n = 0
	}
	if partialCount < 0 {
		partialCount = 0
	}
	backing := make([]float64, n*partialCount)
	out := make([]Number, n)
	for i := range out {
		out[i].Partials = backing[i*partialCount : (i+1)*partialCount : (i+1)*partialCount]
	}
	return out
}

// LayoutOf returns the common layout of a dual slice. An empty slice
// reports the zero-partial depth-1 layout.
func LayoutOf(ds []Number) Layout {
	if len(ds) == 0 {
		return Chunk(0)
	}
	return ds[0].Layout()
}
