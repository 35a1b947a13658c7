//go:build !((debug && !nocheck_filepath) || check_filepath)

package assert

// FilePathChecks reports whether ResourcePath checks are compiled in.
// Enable with -tags check_filepath or -tags debug.
const FilePathChecks = false
