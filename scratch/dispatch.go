package scratch

import (
	"fmt"

	"github.com/cwbudde/algo-scratch/dual"
)

// DualShaped is the contract AD array types implement so the dispatch
// protocol can classify their values: the element count and the dual
// layout the value currently carries. A DualShaped value may report a
// plain layout, in which case it dispatches to the plain view.
type DualShaped interface {
	Len() int
	DualLayout() dual.Layout
}

// Store is the cache side of the dispatch protocol, satisfied by *Cache
// and *Fixed.
type Store interface {
	Len() int

	plainView() View
	dualView(l dual.Layout) (View, error)
}

func (c *Cache) plainView() View {
	return c.Plain()
}

func (c *Cache) dualView(l dual.Layout) (View, error) {
	v, err := c.Dual(l)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (f *Fixed) plainView() View {
	return f.Plain()
}

func (f *Fixed) dualView(l dual.Layout) (View, error) {
	d, err := f.Dual(l)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Get returns the view of s matching the representative value u: a plain
// view for untagged inputs, a dual view of u's layout for dual-tagged
// ones. The dual path may grow a *Cache and may fail on a *Fixed with
// ErrLayoutTooLarge. A representative whose element count differs from
// the cache's fails with ErrShapeMismatch before any view is taken.
func Get(s Store, u any) (View, error) {
	n, layout, isDual, err := classify(u)
	if err != nil {
		return nil, err
	}
	if n != s.Len() {
		return nil, fmt.Errorf("scratch: representative has %d elements, cache has %d: %w",
			n, s.Len(), ErrShapeMismatch)
	}
	if !isDual {
		return s.plainView(), nil
	}
	return s.dualView(layout)
}

// classify maps a representative value to its element count and dual
// tagging. Concrete slice kinds are matched first so that Duals and
// Plain, which also carry Len methods, take their specific paths.
func classify(u any) (n int, layout dual.Layout, isDual bool, err error) {
	switch v := u.(type) {
	case []float64:
		return len(v), dual.Layout{}, false, nil
	case Plain:
		return len(v), dual.Layout{}, false, nil
	case []dual.Number:
		return len(v), dual.LayoutOf(v), true, nil
	case Duals:
		return len(v), dual.LayoutOf(v), true, nil
	case DualShaped:
		l := v.DualLayout()
		return v.Len(), l, !l.IsPlain(), nil
	case interface{ Len() int }:
		return v.Len(), dual.Layout{}, false, nil
	default:
		return 0, dual.Layout{}, false, fmt.Errorf("scratch: cannot classify %T: %w", u, ErrUnsupportedElement)
	}
}
