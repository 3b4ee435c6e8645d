package scratch

import "sync"

// Pool provides sync.Pool-based reuse of plain scratch slices for
// strictly nested buffer lifetimes, where a buffer is taken, used within
// one call, and returned. Unlike the long-lived caches, pooled buffers
// may be reclaimed by the garbage collector between uses.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return new([]float64)
			},
		},
	}
}

// Get returns a zeroed plain buffer of length n. Callers must return it
// via Put when done.
func (p *Pool) Get(n int) Plain {
	if n < 0 {
		n = 0
	}
	sp := p.pool.Get().(*[]float64)
	s := *sp
	if cap(s) < n {
		s = make([]float64, n)
	} else {
		s = s[:n]
		clear(s)
	}
	return Plain(s)
}

// Put returns a buffer to the pool for reuse. The caller must not use
// the buffer after calling Put.
func (p *Pool) Put(b Plain) {
	if b == nil {
		return
	}
	s := []float64(b)
	p.pool.Put(&s)
}
