package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// DirEntry is an alias for fs.DirEntry from the standard library.
type DirEntry = fs.DirEntry

// FileSystemProvider is the read-only view of a filesystem that the scanner
// and loader work against. Errors for missing paths must wrap fs.ErrNotExist.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the entries of the directory at the given path.
	// Entries are returned in the order the underlying listing yields them;
	// callers must not assume any sorting.
	ReadDir(path string) ([]DirEntry, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
