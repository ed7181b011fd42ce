// Package loader reads and parses JSON documents named by the caller.
//
// ReadFiles is all-or-nothing: a single missing file or malformed document
// fails the whole batch. ReadFilesCollect is the separately named variant
// that reports a result per file instead.
package loader
