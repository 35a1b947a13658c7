package assert

import (
	"io/fs"
	"os"
)

// Filesystem answers whether a file exists. It is the only external
// collaborator of this package.
type Filesystem interface {
	Exists(path string) bool
}

// OSFilesystem probes the host filesystem with os.Stat.
type OSFilesystem struct{}

// Exists reports whether path names an existing entry that is not a
// directory. Any Stat error, including permission errors, reads as absent.
func (OSFilesystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

type fsFilesystem struct {
	fsys fs.FS
}

// FromFS adapts an io/fs file system. Paths use fs.ValidPath syntax.
func FromFS(fsys fs.FS) Filesystem {
	return fsFilesystem{fsys: fsys}
}

func (f fsFilesystem) Exists(path string) bool {
	info, err := fs.Stat(f.fsys, path)
	return err == nil && !info.IsDir()
}

// FileExists checks that path is non-empty and names an existing file on
// the host filesystem. An empty path raises a nullness violation; a missing
// file raises a resource-missing violation.
func FileExists(path string) {
	if FilePathChecks {
		fileExists(OSFilesystem{}, path)
	}
}

// FileExistsIn is FileExists against the given filesystem.
func FileExistsIn(fsys Filesystem, path string) {
	if FilePathChecks {
		fileExists(fsys, path)
	}
}

func fileExists(fsys Filesystem, path string) {
	// The empty-path stage belongs to this category and runs even when
	// Nullness checks are compiled out.
	if path == "" {
		raise(KindNullness, "expected non-empty path")
	}
	if isNil(fsys) {
		raise(KindNullness, "expected non-nil filesystem")
	}
	if !fsys.Exists(path) {
		raise(KindResourceMissing, "file %q does not exist", path)
	}
}
