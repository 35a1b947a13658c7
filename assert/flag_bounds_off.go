//go:build !((debug && !nocheck_bounds) || check_bounds)

package assert

// BoundsChecks reports whether Bounds checks are compiled in.
// Enable with -tags check_bounds or -tags debug.
const BoundsChecks = false
