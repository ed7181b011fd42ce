// Package filesystem provides a read-only filesystem abstraction and its
// implementations.
//
// The scanner and loader receive a FileSystemProvider instead of touching the
// os package directly, so the directory being read and the capability to read
// it are always explicit parameters.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
