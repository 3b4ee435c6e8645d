// Package scratch provides reusable, allocation-free scratch buffers for
// numerical code that alternates between plain evaluation and forward-mode
// automatic differentiation.
//
// Hot numerical loops (ODE steppers, optimizers) need temporaries shaped
// like their state vector. When the same callback also runs under AD, each
// element additionally carries partial-derivative slots, multiplying the
// storage footprint. Allocating either shape per call dominates runtime;
// the caches here are allocated once next to the caller's persistent state
// and hand out views of whichever shape the current input requires.
//
// # Cache types
//
//   - Cache owns one flat float64 allocation and reinterprets it, without
//     copying, as either a plain slice or a strided dual view. It grows on
//     demand when a larger layout is requested and supports nested
//     differentiation levels.
//   - Fixed owns a dual-element allocation for exactly one layout. It is
//     simpler and slightly cheaper per access, but cannot grow and does
//     not nest.
//   - Lazy maps (element kind, element count) keys to lazily created
//     buffers, for callers that cannot predict layouts up front. Entries
//     are never evicted.
//   - Pool recycles plain scratch slices through a sync.Pool for strictly
//     nested buffer lifetimes.
//
// # Dispatch
//
// Get selects the view matching a representative value: plain inputs
// ([]float64, Plain, or anything with Len) yield a plain view, dual inputs
// ([]dual.Number, Duals, or any DualShaped implementation) yield a dual
// view of the same layout. A typical callback:
//
//	func rhs(c *scratch.Cache, u any) error {
//		v, err := scratch.Get(c, u)
//		if err != nil {
//			return err
//		}
//		switch tmp := v.(type) {
//		case scratch.Plain:
//			// plain evaluation writes through tmp
//		case scratch.DualView:
//			// AD evaluation writes primal and partial slots
//		}
//		return nil
//	}
//
// # Ownership and validity
//
// Views are non-owning windows over cache-owned storage. A view taken
// from a Cache stays coupled to that allocation only until the next
// growth; DualView.Valid reports whether the view still aliases the live
// backing array. A cache instance belongs to one computation context;
// concurrent use of the same instance requires external synchronization.
package scratch
