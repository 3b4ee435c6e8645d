package integrate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-scratch/scratch"
)

// Jacobian approximates ∂f/∂u by central differences. The perturbed
// state and the two derivative evaluations per column come from cached
// scratch, so repeated computation on the same problem size allocates
// only on the first call.
type Jacobian struct {
	lazy *scratch.Lazy
	pool *scratch.Pool
	step float64
}

// JacobianOption configures a Jacobian.
type JacobianOption func(*Jacobian)

// WithStep sets the base relative perturbation. The default is the cube
// root of machine epsilon, the usual central-difference choice.
func WithStep(h float64) JacobianOption {
	return func(j *Jacobian) {
		if h > 0 {
			j.step = h
		}
	}
}

// NewJacobian returns a Jacobian helper ready for use.
func NewJacobian(opts ...JacobianOption) *Jacobian {
	j := &Jacobian{
		lazy: scratch.NewLazy(),
		pool: scratch.NewPool(),
		step: math.Cbrt(math.Nextafter(1, 2) - 1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(j)
		}
	}
	return j
}

// Compute fills dst with the n×n Jacobian of f at state u and time t,
// where n = len(u). dst must already be n×n; a differently shaped dst
// fails with scratch.ErrShapeMismatch.
func (j *Jacobian) Compute(dst *mat.Dense, f Func, u []float64, t float64) error {
	n := len(u)
	if r, c := dst.Dims(); r != n || c != n {
		return fmt.Errorf("integrate: jacobian is %dx%d, state has %d elements: %w",
			r, c, n, scratch.ErrShapeMismatch)
	}

	v, err := j.lazy.Get(u)
	if err != nil {
		return err
	}
	fp := v.(scratch.Plain)

	up := j.pool.Get(n)
	defer j.pool.Put(up)
	fm := j.pool.Get(n)
	defer j.pool.Put(fm)
	copy(up, u)

	for col := 0; col < n; col++ {
		h := j.step * math.Max(math.Abs(u[col]), 1)
		up[col] = u[col] + h
		f(fp, up, t)
		up[col] = u[col] - h
		f(fm, up, t)
		up[col] = u[col]

		inv := 1 / (2 * h)
		for row := 0; row < n; row++ {
			dst.Set(row, col, (fp[row]-fm[row])*inv)
		}
	}
	return nil
}
