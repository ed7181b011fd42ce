// Package checksum hashes file content and recognizes SHA-256 digests.
//
// The loader records the digest of every file it reads so reports can
// identify the exact bytes that were validated, and the HIP412 validator
// uses IsSHA256 to check the checksum fields a metadata document declares.
//
// # Example Usage
//
//	calculator := checksum.New()
//	digest := calculator.Calculate(fileContent)
//	ok := checksum.IsSHA256(digest) // true
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
