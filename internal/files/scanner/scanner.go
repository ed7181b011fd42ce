package scanner

import (
	"fmt"
	"strings"

	"github.com/vvka-141/nftmeta/internal/files/filesystem"
	"github.com/vvka-141/nftmeta/internal/logging"
	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

// Scanner discovers JSON documents in a single directory.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider and logger are also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     nftmeta.Logger
}

// NewScanner creates a new scanner reading the OS filesystem.
// A nil logger discards the diagnostic counts.
func NewScanner(logger nftmeta.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger nftmeta.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// JSONFilesForDir lists dir and returns the names of the entries whose
// extension is exactly ".json". Subdirectories are listed like files and are
// not descended into. The result keeps the listing order and is empty, not
// nil, when nothing matches.
func (s *Scanner) JSONFilesForDir(dir string) ([]string, error) {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}
	s.logger.Info("Found %d for directory: %s", len(entries), dir)

	jsonFiles := []string{}
	for _, entry := range entries {
		if Ext(entry.Name()) == nftmeta.JSONExtension {
			jsonFiles = append(jsonFiles, entry.Name())
		}
	}
	s.logger.Info("Found %d files with the %s extension", len(jsonFiles), nftmeta.JSONExtension)

	return jsonFiles, nil
}

// Ext returns the extension of name: the suffix starting at the last dot.
// Names whose only dot is the leading one (".json", ".env") and names made
// only of dots have no extension; "..json" has ".json".
func Ext(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return ""
	}
	if strings.Trim(name, ".") == "" {
		return ""
	}
	return name[i:]
}

// Verify Scanner implements the interface at compile time
var _ nftmeta.FileScanner = (*Scanner)(nil)
