package nftmeta

// FileLoader reads JSON documents from a directory.
type FileLoader interface {
	// ReadFiles reads and parses every named file under dir, in order.
	// The first read or parse failure aborts the batch and no records are returned.
	ReadFiles(dir string, filenames []string) ([]FileRecord, error)

	// ReadFilesCollect reads every named file under dir and reports each outcome
	// separately. It never aborts.
	ReadFilesCollect(dir string, filenames []string) []FileResult
}
