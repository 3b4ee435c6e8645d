package scratch

import "github.com/cwbudde/algo-scratch/dual"

// View is the common surface of the buffer shapes handed out by the
// caches: a plain slice, a strided dual view, a dual-element slice, or a
// primal-only accessor.
type View interface {
	Len() int
}

// Plain is a plain-scalar view: an ordinary float64 slice that also
// satisfies View. It doubles as a representative input type for the
// dispatch protocol.
type Plain []float64

// Len returns the number of elements.
func (p Plain) Len() int {
	return len(p)
}

// DualView is a non-owning, strided window that interprets flat scalar
// storage as dual-tagged elements: each element occupies
// Layout().ScalarsPerElement() consecutive scalars, primal slot first,
// partial slots after it.
//
// Views taken from a Cache alias its backing array. After the cache
// grows, previously taken views keep referencing the superseded
// allocation; Valid reports whether the view is still live. Accessors do
// not copy.
type DualView struct {
	data   []float64
	n      int
	stride int
	layout dual.Layout
	cache  *Cache
	gen    uint64
}

// Len returns the number of dual elements.
func (v DualView) Len() int {
	return v.n
}

// Layout returns the layout the view was taken for.
func (v DualView) Layout() dual.Layout {
	return v.layout
}

// DualLayout returns the view's layout, satisfying DualShaped so a view
// can itself serve as a representative input for dispatch.
func (v DualView) DualLayout() dual.Layout {
	return v.layout
}

// Valid reports whether the view still aliases its cache's live backing
// array. Views detached from any cache (for example those handed out by
// Lazy) are always valid.
func (v DualView) Valid() bool {
	return v.cache == nil || v.gen == v.cache.gen
}

// Scalars returns the raw backing scalars of the whole view, length
// Len()*Layout().ScalarsPerElement(). AD packages can reinterpret this
// directly.
func (v DualView) Scalars() []float64 {
	return v.data
}

// Element returns the raw scalars of element i: the primal slot followed
// by the element's partial slots (compound, for nested layouts).
func (v DualView) Element(i int) []float64 {
	lo := i * v.stride
	hi := lo + v.stride
	return v.data[lo:hi:hi]
}

// Value returns element i's innermost primal value.
func (v DualView) Value(i int) float64 {
	return v.data[i*v.stride]
}

// SetValue sets element i's innermost primal value.
func (v DualView) SetValue(i int, x float64) {
	v.data[i*v.stride] = x
}

// Partial returns element i's j-th innermost-level partial. For nested
// layouts, deeper slots are reached through Element.
func (v DualView) Partial(i, j int) float64 {
	v.checkPartial(j)
	return v.data[i*v.stride+1+j]
}

// SetPartial sets element i's j-th innermost-level partial.
func (v DualView) SetPartial(i, j int, x float64) {
	v.checkPartial(j)
	v.data[i*v.stride+1+j] = x
}

// The stride places element i+1 directly after element i's partials, so
// a j beyond the innermost count would silently read the next element.
func (v DualView) checkPartial(j int) {
	if j < 0 || j >= v.layout.PartialCount() {
		panic("scratch: partial index out of range")
	}
}
