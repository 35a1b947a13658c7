//go:build !((debug && !nocheck_compare) || check_compare)

package assert

// CompareChecks reports whether Comparison checks are compiled in.
// Enable with -tags check_compare or -tags debug.
const CompareChecks = false
