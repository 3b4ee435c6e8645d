package integrate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-scratch/scratch"
)

// Errors returned by the steppers and drivers.
var (
	ErrInvalidStep = errors.New("integrate: step size must be positive")
	ErrEmptyState  = errors.New("integrate: empty state vector")
)

// Func is an ODE right-hand side: it writes du/dt for state u at time t
// into du. du and u always have the stepper's element count.
type Func func(du, u []float64, t float64)

// Stepper advances a state vector in place by one step of size dt.
type Stepper interface {
	Step(f Func, u []float64, t, dt float64) error
}

// Euler is the explicit Euler method. One derivative evaluation per
// step, first-order accurate.
type Euler struct {
	du *scratch.Cache
}

// NewEuler returns an Euler stepper for n-element states.
func NewEuler(n int) (*Euler, error) {
	if n == 0 {
		return nil, ErrEmptyState
	}
	du, err := scratch.New(n, scratch.WithChunk(0))
	if err != nil {
		return nil, err
	}
	return &Euler{du: du}, nil
}

// Step advances u in place: u += dt*f(u, t). The derivative buffer is
// dispatched from the stepper's cache against u, so a state sized for a
// different problem fails with scratch.ErrShapeMismatch.
func (e *Euler) Step(f Func, u []float64, t, dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStep, dt)
	}
	v, err := scratch.Get(e.du, u)
	if err != nil {
		return err
	}
	du := v.(scratch.Plain)
	f(du, u, t)
	floats.AddScaled(u, dt, du)
	return nil
}

// Heun is the explicit trapezoidal (Heun) method. Two derivative
// evaluations per step, second-order accurate.
type Heun struct {
	k1, k2, stage *scratch.Cache
}

// NewHeun returns a Heun stepper for n-element states.
func NewHeun(n int) (*Heun, error) {
	if n == 0 {
		return nil, ErrEmptyState
	}
	caches, err := plainCaches(n, 3)
	if err != nil {
		return nil, err
	}
	return &Heun{k1: caches[0], k2: caches[1], stage: caches[2]}, nil
}

// Step advances u in place by one Heun step.
func (h *Heun) Step(f Func, u []float64, t, dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStep, dt)
	}
	v, err := scratch.Get(h.k1, u)
	if err != nil {
		return err
	}
	k1 := v.(scratch.Plain)
	k2 := h.k2.Plain()
	stage := h.stage.Plain()

	f(k1, u, t)
	floats.AddScaledTo(stage, u, dt, k1)
	f(k2, stage, t+dt)

	floats.AddScaled(u, dt/2, k1)
	floats.AddScaled(u, dt/2, k2)
	return nil
}

// RK4 is the classical fourth-order Runge-Kutta method. Four derivative
// evaluations per step.
type RK4 struct {
	k     [4]*scratch.Cache
	stage *scratch.Cache
}

// NewRK4 returns an RK4 stepper for n-element states.
func NewRK4(n int) (*RK4, error) {
	if n == 0 {
		return nil, ErrEmptyState
	}
	caches, err := plainCaches(n, 5)
	if err != nil {
		return nil, err
	}
	r := &RK4{stage: caches[4]}
	copy(r.k[:], caches[:4])
	return r, nil
}

// Step advances u in place by one RK4 step. It stays on the caches'
// typed fast path and performs no allocation after construction.
func (r *RK4) Step(f Func, u []float64, t, dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStep, dt)
	}
	if len(u) != r.stage.Len() {
		return fmt.Errorf("integrate: state has %d elements, stepper sized for %d: %w",
			len(u), r.stage.Len(), scratch.ErrShapeMismatch)
	}
	k1 := r.k[0].Plain()
	k2 := r.k[1].Plain()
	k3 := r.k[2].Plain()
	k4 := r.k[3].Plain()
	stage := r.stage.Plain()

	f(k1, u, t)
	floats.AddScaledTo(stage, u, dt/2, k1)
	f(k2, stage, t+dt/2)
	floats.AddScaledTo(stage, u, dt/2, k2)
	f(k3, stage, t+dt/2)
	floats.AddScaledTo(stage, u, dt, k3)
	f(k4, stage, t+dt)

	floats.AddScaled(u, dt/6, k1)
	floats.AddScaled(u, dt/3, k2)
	floats.AddScaled(u, dt/3, k3)
	floats.AddScaled(u, dt/6, k4)
	return nil
}

// Solve drives s from t0 to t1 with nominal step dt, shortening the
// final step to land on t1. u is advanced in place.
func Solve(s Stepper, f Func, u []float64, t0, t1, dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStep, dt)
	}
	for t := t0; t < t1; {
		h := dt
		if t+h > t1 {
			h = t1 - t
		}
		if h <= 0 {
			break
		}
		if err := s.Step(f, u, t, h); err != nil {
			return err
		}
		t += h
	}
	return nil
}

func plainCaches(n, count int) ([]*scratch.Cache, error) {
	out := make([]*scratch.Cache, count)
	for i := range out {
		c, err := scratch.New(n, scratch.WithChunk(0))
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
