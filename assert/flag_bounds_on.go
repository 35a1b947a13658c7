//go:build (debug && !nocheck_bounds) || check_bounds

package assert

// BoundsChecks reports whether Bounds checks are compiled in.
const BoundsChecks = true
