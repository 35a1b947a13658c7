//go:build !((debug && !nocheck_condition) || check_condition)

package assert

// ConditionChecks reports whether Condition checks are compiled in.
// Enable with -tags check_condition or -tags debug.
const ConditionChecks = false
