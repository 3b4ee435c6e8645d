package dual

// DefaultChunkThreshold is the largest partial count DefaultChunk will
// suggest. Larger chunks inflate every element's footprint while the
// marginal win per derivative pass flattens out well before this point.
const DefaultChunkThreshold = 12

// DefaultChunk suggests a partial count for a problem with n elements
// when the caller does not supply one: the full problem size for small
// problems, capped at DefaultChunkThreshold for larger ones. Callers with
// a tuned chunk size should pass their own instead.
func DefaultChunk(n int) int {
	if n < 0 {
		return 0
	}
	if n < DefaultChunkThreshold {
		return n
	}
	return DefaultChunkThreshold
}
