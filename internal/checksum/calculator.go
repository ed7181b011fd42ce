package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator is an interface for computing file checksums.
type Calculator interface {
	// Calculate computes a checksum of the raw, unmodified content.
	Calculate(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// Calculate returns the lowercase hex SHA-256 digest of content.
func (c SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// IsSHA256 reports whether s looks like a hex encoded SHA-256 digest:
// exactly 64 hexadecimal characters, in either case.
func IsSHA256(s string) bool {
	if len(s) != 2*sha256.Size {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

var _ Calculator = SHA256{}
