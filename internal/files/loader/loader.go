package loader

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/nftmeta/internal/checksum"
	"github.com/vvka-141/nftmeta/internal/files/filesystem"
	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

// Loader reads JSON documents from a directory.
// Loader holds no per-call state and is safe for concurrent use when the
// filesystem provider is.
type Loader struct {
	fsProvider filesystem.FileSystemProvider
	calculator checksum.Calculator
}

// NewLoader creates a loader reading the OS filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFS(filesystem.NewOSFileSystem())
}

// NewLoaderWithFS creates a loader with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewLoaderWithFS(fsProvider filesystem.FileSystemProvider) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Loader{
		fsProvider: fsProvider,
		calculator: checksum.New(),
	}
}

// ReadFiles reads each file in filenames from dir, in order, and parses it as JSON.
//
// The batch fails fast: the first missing, unreadable or malformed file aborts
// the call and no records are returned. Read failures wrap the underlying
// filesystem error; parse failures are *nftmeta.ParseError.
func (l *Loader) ReadFiles(dir string, filenames []string) ([]nftmeta.FileRecord, error) {
	records := make([]nftmeta.FileRecord, 0, len(filenames))

	for _, filename := range filenames {
		data, _, err := l.readFile(dir, filename)
		if err != nil {
			return nil, err
		}
		records = append(records, nftmeta.FileRecord{
			Filename: filename,
			Filedata: data,
		})
	}

	return records, nil
}

// ReadFilesCollect is the partial-results counterpart of ReadFiles. Every
// filename yields exactly one FileResult, in input order, carrying either the
// parsed document and its checksum or the error that prevented it.
func (l *Loader) ReadFilesCollect(dir string, filenames []string) []nftmeta.FileResult {
	results := make([]nftmeta.FileResult, 0, len(filenames))

	for _, filename := range filenames {
		data, sum, err := l.readFile(dir, filename)
		results = append(results, nftmeta.FileResult{
			Filename: filename,
			Filedata: data,
			Checksum: sum,
			Err:      err,
		})
	}

	return results
}

// readFile returns the decoded document and the SHA-256 of its raw bytes.
func (l *Loader) readFile(dir, filename string) (any, string, error) {
	content, err := l.fsProvider.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var data any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, "", &nftmeta.ParseError{Filename: filename, Err: err}
	}

	return data, l.calculator.Calculate(content), nil
}

// Verify Loader implements the interface at compile time
var _ nftmeta.FileLoader = (*Loader)(nil)
