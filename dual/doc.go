// Package dual describes the memory shape of forward-mode dual numbers
// without implementing their arithmetic. A dual element is one primal
// scalar followed by a fixed number of partial-derivative slots; nesting
// (differentiating through differentiation) stacks that shape, so the
// per-element footprint compounds multiplicatively with each level.
//
// The scratch caches in package scratch consume Layout values to size and
// reinterpret their backing storage. AD packages that provide the actual
// derivative arithmetic only need to report their values' Layout through
// the scratch.DualShaped contract.
package dual
