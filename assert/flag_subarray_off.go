//go:build !((debug && !nocheck_subarray) || check_subarray)

package assert

// SubarrayChecks reports whether Subrange checks are compiled in.
// Enable with -tags check_subarray or -tags debug.
const SubarrayChecks = false
