//go:build !((debug && !nocheck_null) || check_null)

package assert

// NullChecks reports whether Nullness checks are compiled in.
// Enable with -tags check_null or -tags debug.
const NullChecks = false
