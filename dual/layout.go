package dual

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLayout reports a partial/nesting configuration that is
// internally inconsistent or whose footprint would overflow addressable
// capacity.
var ErrInvalidLayout = errors.New("dual: invalid layout")

// MaxElementScalars caps the per-element scalar footprint a Layout may
// describe. Requests beyond this are treated as configuration errors
// rather than attempted allocations.
const MaxElementScalars = 1 << 24

// Layout describes how one dual-tagged element maps onto flat scalar
// storage: one primal slot plus a partial count per nesting level,
// innermost level first. The zero Layout describes a plain scalar with
// no partials and no nesting.
type Layout struct {
	partials []int
}

// Chunk returns a depth-1 layout with the given partial count.
func Chunk(partialCount int) Layout {
	return Layout{partials: []int{partialCount}}
}

// Chunks returns a nested layout from per-level partial counts, innermost
// level first. Chunks(a, b) describes a dual-of-dual element whose primal
// is itself an a-partial dual and which carries b partials of that inner
// shape.
func Chunks(counts ...int) Layout {
	if len(counts) == 0 {
		return Layout{}
	}
	p := make([]int, len(counts))
	copy(p, counts)
	return Layout{partials: p}
}

// Depth returns the number of stacked differentiation levels.
// A zero (plain) layout has depth 0.
func (l Layout) Depth() int {
	return len(l.partials)
}

// IsPlain reports whether the layout describes an untagged scalar.
func (l Layout) IsPlain() bool {
	return len(l.partials) == 0
}

// PartialCount returns the innermost level's partial count, or 0 for a
// plain layout.
func (l Layout) PartialCount() int {
	if len(l.partials) == 0 {
		return 0
	}
	return l.partials[0]
}

// Partials returns a copy of the per-level partial counts, innermost
// level first.
func (l Layout) Partials() []int {
	if len(l.partials) == 0 {
		return nil
	}
	p := make([]int, len(l.partials))
	copy(p, l.partials)
	return p
}

// ScalarsPerElement returns the number of scalar slots one element of
// this layout occupies: the product of (1+count) across all levels.
// Plain layouts occupy one slot. The result is unspecified for layouts
// that fail Validate.
func (l Layout) ScalarsPerElement() int {
	spe := 1
	for _, n := range l.partials {
		spe *= 1 + n
	}
	return spe
}

// Validate checks the layout's per-level counts and compound footprint.
// Negative counts and footprints beyond MaxElementScalars return an error
// wrapping ErrInvalidLayout. Plain layouts are always valid.
func (l Layout) Validate() error {
	spe := 1
	for i, n := range l.partials {
		if n < 0 {
			return fmt.Errorf("level %d partial count %d: %w", i, n, ErrInvalidLayout)
		}
		spe *= 1 + n
		if spe > MaxElementScalars {
			return fmt.Errorf("element footprint exceeds %d scalars: %w", MaxElementScalars, ErrInvalidLayout)
		}
	}
	return nil
}

// Fits reports whether an element of this layout fits inside one element
// provisioned for other, i.e. whether a view of this layout can be taken
// from storage sized for other without growth.
func (l Layout) Fits(other Layout) bool {
	return l.ScalarsPerElement() <= other.ScalarsPerElement()
}

// String returns a canonical form such as "plain", "dual[3]" or
// "dual[3,2]". Distinct layouts have distinct strings even when their
// footprints coincide, making the result usable as a cache key.
func (l Layout) String() string {
	if len(l.partials) == 0 {
		return "plain"
	}
	var sb strings.Builder
	sb.WriteString("dual[")
	for i, n := range l.partials {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte(']')
	return sb.String()
}
