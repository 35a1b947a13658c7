// Package assert provides runtime invariant checks for low-level code that
// compile away when their category is disabled.
//
// Checks are grouped into seven categories, each switched by build tags:
//
//	category          enable alone       disable under -tags debug
//	condition         check_condition    nocheck_condition
//	nullness          check_null         nocheck_null
//	resource-path     check_filepath     nocheck_filepath
//	bounds            check_bounds       nocheck_bounds
//	subrange          check_subarray     nocheck_subarray
//	comparison        check_compare      nocheck_compare
//	arithmetic-logic  check_arith        nocheck_arith
//
// The debug tag turns every category on. A category is compiled in when
// (debug && !nocheck_X) || check_X holds. Each category exposes a constant
// (BoundsChecks, CompareChecks, ...) and every check starts by testing it, so
// a disabled check is dead code and inlines to nothing. Argument expressions
// at the call site are still evaluated, as for any Go call; keep expensive
// computations out of the argument list or guard them with the constant:
//
//	if assert.CompareChecks {
//		assert.IsSmaller(checksum(buf), limit)
//	}
//
// A failed check panics with a *Violation. The package never recovers; the
// host decides whether to crash, log or fail a test. Capture converts a
// violation back into a value, and a *Violation matches its kind's sentinel
// with errors.Is:
//
//	if v := assert.Capture(func() { assert.IsWithinArrayBounds(i, n) }); v != nil {
//		log.Printf("contract broken: %v", v) // errors.Is(v, assert.ErrBounds)
//	}
//
// All checks are stateless and safe for concurrent use. FileExists is the
// only one that performs I/O.
package assert
