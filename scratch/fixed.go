package scratch

import (
	"fmt"

	"github.com/cwbudde/algo-scratch/dual"
)

// Duals is a dual-element view or representative input: a slice of
// storage-only dual elements sharing one layout.
type Duals []dual.Number

// Len returns the number of dual elements.
func (d Duals) Len() int {
	return len(d)
}

// Fixed owns a dual-element allocation for exactly one depth-1 layout.
// It avoids the reinterpretation step of Cache at the cost of rigidity:
// the layout is immutable, a larger request is an error rather than a
// growth trigger, and nesting is not supported. Appropriate when the
// chunk size is guaranteed ahead of time.
type Fixed struct {
	elems Duals
	chunk int
}

// NewFixed returns a Fixed cache of n dual elements. The partial count
// defaults to dual.DefaultChunk(n); WithChunk sets it explicitly.
// Layouts deeper than one level are rejected.
func NewFixed(n int, opts ...Option) (*Fixed, error) {
	if n < 0 {
		return nil, fmt.Errorf("scratch: negative element count %d: %w", n, dual.ErrInvalidLayout)
	}
	cfg := applyOptions(n, opts)
	if err := cfg.layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.layout.Depth() > 1 {
		return nil, fmt.Errorf("scratch: fixed cache holds a single level, got depth %d: %w",
			cfg.layout.Depth(), dual.ErrInvalidLayout)
	}
	if _, err := footprint(n, cfg.layout); err != nil {
		return nil, err
	}
	return &Fixed{
		elems: Duals(dual.Numbers(n, cfg.layout.PartialCount())),
		chunk: cfg.layout.PartialCount(),
	}, nil
}

// Len returns the cache's element count.
func (f *Fixed) Len() int {
	return len(f.elems)
}

// PartialCount returns the provisioned per-element partial count.
func (f *Fixed) PartialCount() int {
	return f.chunk
}

// Plain returns a primal-only view over the stored elements. Reads and
// writes go straight to each element's primal slot; partials are left
// untouched and nothing is copied.
func (f *Fixed) Plain() Primals {
	return Primals{elems: f.elems}
}

// Dual returns the element allocation when layout l fits the fixed
// provision. Requests wider than the provisioned partial count fail with
// ErrLayoutTooLarge; there is no growth path. Requests narrower than the
// provision succeed and receive the full provisioned elements.
func (f *Fixed) Dual(l dual.Layout) (Duals, error) {
	if err := checkDualLayout(l); err != nil {
		return nil, err
	}
	if l.Depth() > 1 {
		return nil, fmt.Errorf("scratch: fixed cache holds a single level, got depth %d: %w",
			l.Depth(), dual.ErrInvalidLayout)
	}
	if l.PartialCount() > f.chunk {
		return nil, fmt.Errorf("scratch: requested %d partials, provisioned %d: %w",
			l.PartialCount(), f.chunk, ErrLayoutTooLarge)
	}
	return f.elems, nil
}

// Primals is a plain-scalar view over a dual-element allocation that
// touches only each element's primal slot.
type Primals struct {
	elems Duals
}

// Len returns the number of elements.
func (p Primals) Len() int {
	return len(p.elems)
}

// Value returns element i's primal value.
func (p Primals) Value(i int) float64 {
	return p.elems[i].Value
}

// SetValue sets element i's primal value.
func (p Primals) SetValue(i int, x float64) {
	p.elems[i].Value = x
}

// CopyTo copies primal values into dst and returns the number copied,
// min(Len(), len(dst)).
func (p Primals) CopyTo(dst []float64) int {
	n := min(len(dst), len(p.elems))
	for i := 0; i < n; i++ {
		dst[i] = p.elems[i].Value
	}
	return n
}
