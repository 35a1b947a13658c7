//go:build (debug && !nocheck_condition) || check_condition

package assert

// ConditionChecks reports whether Condition checks are compiled in.
const ConditionChecks = true
