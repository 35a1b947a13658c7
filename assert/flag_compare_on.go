//go:build (debug && !nocheck_compare) || check_compare

package assert

// CompareChecks reports whether Comparison checks are compiled in.
const CompareChecks = true
