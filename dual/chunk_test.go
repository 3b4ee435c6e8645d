package dual

import "testing"

func TestDefaultChunk(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{5, 5},
		{11, 11},
		{12, 12},
		{13, 12},
		{1000, 12},
	}
	for _, tt := range tests {
		if got := DefaultChunk(tt.n); got != tt.want {
			t.Fatalf("DefaultChunk(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
