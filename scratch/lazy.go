package scratch

// Lazy maps (element kind, element count) keys to lazily created
// buffers: the first request for a given shape allocates, every later
// request with the same shape returns the same buffer with whatever
// contents the caller last left in it. Entries are never evicted, so the
// cache holds one permanent allocation per distinct shape ever seen.
//
// Lazy trades the layout precision of Cache for not having to predict
// layouts at all, at the cost of a map lookup per request.
type Lazy struct {
	sizer func(int) int
	bufs  map[lazyKey]View
}

// Layout strings are canonical per layout, so footprint collisions such
// as dual[11] versus dual[3,2] still key separately.
type lazyKey struct {
	kind string
	n    int
}

// LazyOption configures a Lazy cache.
type LazyOption func(*Lazy)

// WithSizer sets the shape function mapping a representative's element
// count to the allocated buffer's element count. The default is
// identity.
func WithSizer(f func(int) int) LazyOption {
	return func(l *Lazy) {
		if f != nil {
			l.sizer = f
		}
	}
}

// NewLazy returns an empty Lazy cache.
func NewLazy(opts ...LazyOption) *Lazy {
	l := &Lazy{
		sizer: func(n int) int { return n },
		bufs:  make(map[lazyKey]View),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Get returns the buffer for the representative value u's kind and sized
// element count, allocating it on first use. Plain representatives map
// to Plain buffers, dual representatives to detached DualView buffers of
// the same layout. Contents are not cleared between uses.
func (l *Lazy) Get(u any) (View, error) {
	n, layout, isDual, err := classify(u)
	if err != nil {
		return nil, err
	}
	sized := l.sizer(n)
	if sized < 0 {
		sized = 0
	}

	key := lazyKey{kind: "plain", n: sized}
	if isDual {
		key.kind = layout.String()
	}
	if v, ok := l.bufs[key]; ok {
		return v, nil
	}

	var v View
	if isDual {
		if err := layout.Validate(); err != nil {
			return nil, err
		}
		need, err := footprint(sized, layout)
		if err != nil {
			return nil, err
		}
		v = DualView{
			data:   make([]float64, need),
			n:      sized,
			stride: layout.ScalarsPerElement(),
			layout: layout,
		}
	} else {
		v = make(Plain, sized)
	}
	l.bufs[key] = v
	return v, nil
}

// Size returns the number of distinct buffers currently held.
func (l *Lazy) Size() int {
	return len(l.bufs)
}
