//go:build (debug && !nocheck_null) || check_null

package assert

// NullChecks reports whether Nullness checks are compiled in.
const NullChecks = true
