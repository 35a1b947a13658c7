package main

import (
	"fmt"
	"io"
	"runtime"
)

func versionCommand(w io.Writer, v VersionInfo) error {
	fmt.Fprintf(w, "checktags %s (commit: %s, built: %s)\n", v.Version, v.Commit, v.Date)
	fmt.Fprintf(w, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
