package nftmeta

// FileRecord is one parsed JSON document read from disk.
// Records are produced in the order their filenames were requested
// and are not modified after creation.
type FileRecord struct {
	Filename string `json:"filename" yaml:"filename"`
	Filedata any    `json:"filedata" yaml:"filedata"`
}

// FileResult is the per-file outcome of a partial-results batch read.
// Exactly one of Filedata or Err is meaningful.
type FileResult struct {
	Filename string
	Filedata any
	Checksum string // SHA-256 of the raw file bytes, empty when the read failed
	Err      error
}

// OK reports whether the file was read and parsed.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// Issue is a single validation finding.
type Issue struct {
	Type string `json:"type" yaml:"type"`
	Msg  string `json:"msg" yaml:"msg"`
	Path string `json:"path" yaml:"path"`
}

// ValidationResult holds the errors and warnings found in one document.
// Both slices are always non-nil so they serialize as empty arrays.
type ValidationResult struct {
	Errors   []Issue `json:"errors" yaml:"errors"`
	Warnings []Issue `json:"warnings" yaml:"warnings"`
}

// NewValidationResult returns an empty result.
func NewValidationResult() ValidationResult {
	return ValidationResult{Errors: []Issue{}, Warnings: []Issue{}}
}

// AddError appends an error finding.
func (r *ValidationResult) AddError(issueType, path, msg string) {
	r.Errors = append(r.Errors, Issue{Type: issueType, Msg: msg, Path: path})
}

// AddWarning appends a warning finding.
func (r *ValidationResult) AddWarning(issueType, path, msg string) {
	r.Warnings = append(r.Warnings, Issue{Type: issueType, Msg: msg, Path: path})
}

// Merge appends the findings of other to r.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Valid returns true if the result carries no errors. Warnings do not count.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if the result carries at least one warning.
func (r ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}
