// Package scanner finds the JSON documents in a directory.
//
// The scanner is deliberately flat: it lists one directory, keeps the entries
// whose extension is exactly ".json" (case-sensitive) and returns their bare
// names in listing order. Callers that need a stable order sort the result
// themselves.
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
