package integrate

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-scratch/internal/testutil"
	"github.com/cwbudde/algo-scratch/scratch"
)

func decay(du, u []float64, _ float64) {
	for i := range du {
		du[i] = -u[i]
	}
}

// Harmonic oscillator u'' = -u as a first-order system.
func oscillator(du, u []float64, _ float64) {
	du[0] = u[1]
	du[1] = -u[0]
}

func TestEulerSingleStep(t *testing.T) {
	e, err := NewEuler(3)
	if err != nil {
		t.Fatalf("NewEuler: %v", err)
	}
	u := testutil.Constant(2, 3)
	if err := e.Step(decay, u, 0, 0.25); err != nil {
		t.Fatalf("Step: %v", err)
	}
	// One explicit Euler step of u' = -u: u1 = u0*(1 - dt).
	testutil.RequireSliceNearlyEqual(t, u, testutil.Constant(1.5, 3), 1e-15)
}

func TestHeunDecay(t *testing.T) {
	h, err := NewHeun(1)
	if err != nil {
		t.Fatalf("NewHeun: %v", err)
	}
	u := []float64{1}
	if err := Solve(h, decay, u, 0, 1, 1e-3); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	testutil.RequireNearlyEqual(t, u[0], math.Exp(-1), 1e-6)
}

func TestRK4Oscillator(t *testing.T) {
	r, err := NewRK4(2)
	if err != nil {
		t.Fatalf("NewRK4: %v", err)
	}
	u := []float64{1, 0}
	if err := Solve(r, oscillator, u, 0, 2*math.Pi, 1e-3); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// One full period returns to the initial state.
	testutil.RequireSliceNearlyEqual(t, u, []float64{1, 0}, 1e-9)
	testutil.RequireFinite(t, u)
}

func TestStepShapeMismatch(t *testing.T) {
	e, err := NewEuler(5)
	if err != nil {
		t.Fatalf("NewEuler: %v", err)
	}
	if err := e.Step(decay, make([]float64, 7), 0, 0.1); !errors.Is(err, scratch.ErrShapeMismatch) {
		t.Fatalf("Euler err = %v, want ErrShapeMismatch", err)
	}

	r, err := NewRK4(5)
	if err != nil {
		t.Fatalf("NewRK4: %v", err)
	}
	if err := r.Step(decay, make([]float64, 7), 0, 0.1); !errors.Is(err, scratch.ErrShapeMismatch) {
		t.Fatalf("RK4 err = %v, want ErrShapeMismatch", err)
	}
}

func TestInvalidStep(t *testing.T) {
	e, err := NewEuler(2)
	if err != nil {
		t.Fatalf("NewEuler: %v", err)
	}
	u := make([]float64, 2)
	if err := e.Step(decay, u, 0, 0); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("Step(dt=0) err = %v, want ErrInvalidStep", err)
	}
	if err := Solve(e, decay, u, 0, 1, -1); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("Solve(dt<0) err = %v, want ErrInvalidStep", err)
	}
}

func TestNewRejectsEmptyState(t *testing.T) {
	if _, err := NewRK4(0); !errors.Is(err, ErrEmptyState) {
		t.Fatalf("NewRK4(0) err = %v, want ErrEmptyState", err)
	}
}

func TestRK4StepDoesNotAllocate(t *testing.T) {
	r, err := NewRK4(64)
	if err != nil {
		t.Fatalf("NewRK4: %v", err)
	}
	u := testutil.RandomState(1, 1, 64)

	allocs := testing.AllocsPerRun(50, func() {
		if err := r.Step(decay, u, 0, 1e-3); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 0 {
		t.Fatalf("Step allocated %.1f times per run, want 0", allocs)
	}
}

func BenchmarkRK4Step(b *testing.B) {
	sizes := []int{8, 128, 2048}
	for _, n := range sizes {
		r, err := NewRK4(n)
		if err != nil {
			b.Fatalf("NewRK4: %v", err)
		}
		u := testutil.RandomState(2, 1, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			for i := 0; i < b.N; i++ {
				if err := r.Step(decay, u, 0, 1e-6); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
