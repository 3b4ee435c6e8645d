package scratch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-scratch/dual"
)

// Total backing capacities stay well below the address-space limit so the
// element-count multiply cannot wrap.
const maxCapacityScalars = math.MaxInt / 8

// Cache owns one flat float64 allocation and reinterprets it, without
// copying, as either a plain slice of its element count or a strided dual
// view for a requested layout. When a request exceeds the provisioned
// capacity the cache grows: it allocates the larger backing array,
// preserves existing contents, and never shrinks again.
//
// A Cache is not safe for concurrent use; growth mutates the backing
// array and the generation counter in place.
type Cache struct {
	data   []float64
	n      int
	layout dual.Layout
	gen    uint64
}

// New returns a Cache for n elements. Without options it provisions a
// single differentiation level sized by dual.DefaultChunk; use WithChunk,
// WithLevels or WithLayout to provision explicitly.
func New(n int, opts ...Option) (*Cache, error) {
	if n < 0 {
		return nil, fmt.Errorf("scratch: negative element count %d: %w", n, dual.ErrInvalidLayout)
	}
	cfg := applyOptions(n, opts)
	if err := cfg.layout.Validate(); err != nil {
		return nil, err
	}
	need, err := footprint(n, cfg.layout)
	if err != nil {
		return nil, err
	}
	return &Cache{
		data:   make([]float64, need),
		n:      n,
		layout: cfg.layout,
	}, nil
}

// Len returns the cache's declared element count.
func (c *Cache) Len() int {
	return c.n
}

// Capacity returns the backing allocation's size in scalars.
func (c *Cache) Capacity() int {
	return len(c.data)
}

// Layout returns the largest layout the cache is provisioned for.
func (c *Cache) Layout() dual.Layout {
	return c.layout
}

// Generation returns the growth counter. It increments exactly when the
// backing allocation is replaced, invalidating previously taken views.
func (c *Cache) Generation() uint64 {
	return c.gen
}

// Plain returns the first Len() backing scalars as a plain view. It never
// allocates. The view aliases the backing array until the next growth.
func (c *Cache) Plain() Plain {
	return Plain(c.data[:c.n:c.n])
}

// Dual returns a view of the backing array shaped as Len() elements of
// layout l. If the required footprint fits the provisioned capacity no
// allocation occurs and the existing scalars are served in place;
// otherwise the cache grows first. Growth is all-or-nothing: on failure
// the prior allocation and provision remain intact.
func (c *Cache) Dual(l dual.Layout) (DualView, error) {
	if err := checkDualLayout(l); err != nil {
		return DualView{}, err
	}
	need, err := footprint(c.n, l)
	if err != nil {
		return DualView{}, err
	}
	if need > len(c.data) {
		c.grow(need, l)
	}
	return DualView{
		data:   c.data[:need:need],
		n:      c.n,
		stride: l.ScalarsPerElement(),
		layout: l,
		cache:  c,
		gen:    c.gen,
	}, nil
}

// Reserve grows the cache, if necessary, to accommodate layout l without
// taking a view, so the one allowed allocation can be paid before a hot
// loop. Reserving an already-provisioned layout is a no-op.
func (c *Cache) Reserve(l dual.Layout) error {
	if err := checkDualLayout(l); err != nil {
		return err
	}
	need, err := footprint(c.n, l)
	if err != nil {
		return err
	}
	if need > len(c.data) {
		c.grow(need, l)
	}
	return nil
}

// Growth keeps the largest provision ever requested: the replacement
// array is at least as large as the old one and existing scalars carry
// over, so plain views observe the same leading values across growth.
func (c *Cache) grow(need int, l dual.Layout) {
	buf := make([]float64, need)
	copy(buf, c.data)
	c.data = buf
	c.layout = l
	c.gen++
}

func checkDualLayout(l dual.Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.IsPlain() {
		return fmt.Errorf("scratch: dual view requires at least one level: %w", dual.ErrInvalidLayout)
	}
	return nil
}

func footprint(n int, l dual.Layout) (int, error) {
	spe := l.ScalarsPerElement()
	if n > 0 && spe > maxCapacityScalars/n {
		return 0, fmt.Errorf("scratch: %d elements of %v overflow capacity: %w", n, l, dual.ErrInvalidLayout)
	}
	return n * spe, nil
}
