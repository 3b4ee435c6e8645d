// Package integrate provides fixed-step explicit ODE steppers whose
// stage temporaries come from preallocated scratch caches, and a
// finite-difference Jacobian helper backed by the lazily sized cache.
//
// The steppers exist as much as consumers of package scratch as they do
// as integrators: each owns its caches next to its state, so repeated
// Step calls perform no per-step allocation after warm-up. For stiff
// problems or error control, use a dedicated solver library; these are
// deliberately plain explicit methods.
package integrate
