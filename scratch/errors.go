package scratch

import "errors"

// Errors returned by the caches and the dispatch protocol. Layout
// configuration failures wrap dual.ErrInvalidLayout instead. All four
// indicate caller misuse to fix, not transient conditions to retry.
var (
	ErrLayoutTooLarge     = errors.New("scratch: layout exceeds fixed provision")
	ErrShapeMismatch      = errors.New("scratch: element count mismatch")
	ErrUnsupportedElement = errors.New("scratch: unsupported element type")
)
