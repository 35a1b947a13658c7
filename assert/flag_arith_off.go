//go:build !((debug && !nocheck_arith) || check_arith)

package assert

// ArithmeticChecks reports whether ArithmeticLogic checks are compiled in.
// Enable with -tags check_arith or -tags debug.
const ArithmeticChecks = false
