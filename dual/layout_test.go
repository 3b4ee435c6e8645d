package dual

import (
	"errors"
	"testing"
)

func TestScalarsPerElement(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   int
	}{
		{"plain", Layout{}, 1},
		{"zero partials", Chunk(0), 1},
		{"three partials", Chunk(3), 4},
		{"twelve partials", Chunk(12), 13},
		{"nested 3x2", Chunks(3, 2), 12},
		{"nested 2x3", Chunks(2, 3), 12},
		{"triple nesting", Chunks(1, 1, 1), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.ScalarsPerElement(); got != tt.want {
				t.Fatalf("ScalarsPerElement() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDepthAndPartialCount(t *testing.T) {
	l := Chunks(3, 2)
	if l.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", l.Depth())
	}
	if l.PartialCount() != 3 {
		t.Fatalf("PartialCount() = %d, want 3", l.PartialCount())
	}

	var plain Layout
	if plain.Depth() != 0 || plain.PartialCount() != 0 || !plain.IsPlain() {
		t.Fatalf("zero Layout should be plain with depth 0")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{"plain", Layout{}, false},
		{"simple", Chunk(4), false},
		{"nested", Chunks(4, 4), false},
		{"negative count", Chunk(-1), true},
		{"negative inner", Chunks(2, -3), true},
		{"footprint overflow", Chunks(MaxElementScalars, 2), true},
		{"compound overflow", Chunks(1<<13, 1<<13), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLayout) {
					t.Fatalf("Validate() = %v, want ErrInvalidLayout", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestFits(t *testing.T) {
	if !Chunk(3).Fits(Chunk(3)) {
		t.Fatal("layout should fit itself")
	}
	if !Chunk(2).Fits(Chunk(5)) {
		t.Fatal("smaller chunk should fit larger provision")
	}
	if Chunk(5).Fits(Chunk(2)) {
		t.Fatal("larger chunk must not fit smaller provision")
	}
	// Depth-1 view inside a nested provision: 1+3 <= (1+3)*(1+2).
	if !Chunk(3).Fits(Chunks(3, 2)) {
		t.Fatal("inner level should fit its own nested provision")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		layout Layout
		want   string
	}{
		{Layout{}, "plain"},
		{Chunk(0), "dual[0]"},
		{Chunk(3), "dual[3]"},
		{Chunks(3, 2), "dual[3,2]"},
	}
	for _, tt := range tests {
		if got := tt.layout.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}

	// Equal footprints must keep distinct strings: both occupy 12 scalars.
	if Chunk(11).String() == Chunks(3, 2).String() {
		t.Fatal("distinct layouts with equal footprints must not collide")
	}
}

func TestPartialsReturnsCopy(t *testing.T) {
	l := Chunks(3, 2)
	p := l.Partials()
	p[0] = 99
	if l.PartialCount() != 3 {
		t.Fatalf("mutating Partials() copy changed the layout")
	}
}
