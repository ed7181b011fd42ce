// Package files groups the file helpers used to feed metadata documents to
// the validator:
//   - filesystem: FileSystemProvider with OS and in-memory implementations
//   - scanner: lists the .json entries of a directory
//   - loader: reads and parses a batch of files
//
// # Usage
//
//	logger := logging.NewConsoleLogger(false)
//	names, err := scanner.NewScanner(logger).JSONFilesForDir("./metadata")
//	if err != nil {
//	    return err
//	}
//	records, err := loader.NewLoader().ReadFiles("./metadata", names)
//	if err != nil {
//	    return err
//	}
//	for _, rec := range records {
//	    result := hip412.Validate(rec.Filedata, hip412.DefaultVersion)
//	    ...
//	}
package files
