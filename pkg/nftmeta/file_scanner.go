package nftmeta

// FileScanner discovers JSON documents in a directory.
type FileScanner interface {
	// JSONFilesForDir returns the names of the entries in dir whose extension
	// is exactly ".json". The directory is not recursed into and the names
	// keep the order of the underlying listing.
	JSONFilesForDir(dir string) ([]string, error)
}
