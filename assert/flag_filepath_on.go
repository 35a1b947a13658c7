//go:build (debug && !nocheck_filepath) || check_filepath

package assert

// FilePathChecks reports whether ResourcePath checks are compiled in.
const FilePathChecks = true
