//go:build (debug && !nocheck_subarray) || check_subarray

package assert

// SubarrayChecks reports whether Subrange checks are compiled in.
const SubarrayChecks = true
