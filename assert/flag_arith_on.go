//go:build (debug && !nocheck_arith) || check_arith

package assert

// ArithmeticChecks reports whether ArithmeticLogic checks are compiled in.
const ArithmeticChecks = true
