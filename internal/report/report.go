package report

import (
	"github.com/google/uuid"

	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

// DocumentReport is the outcome for one file.
type DocumentReport struct {
	Filename  string          `json:"filename" yaml:"filename"`
	Checksum  string          `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	ReadError string          `json:"read_error,omitempty" yaml:"read_error,omitempty"`
	Errors    []nftmeta.Issue `json:"errors" yaml:"errors"`
	Warnings  []nftmeta.Issue `json:"warnings" yaml:"warnings"`
}

// Valid reports whether the file was read and produced no errors.
func (d DocumentReport) Valid() bool {
	return d.ReadError == "" && len(d.Errors) == 0
}

// Summary aggregates counts across a report.
type Summary struct {
	Documents  int `json:"documents" yaml:"documents"`
	Valid      int `json:"valid" yaml:"valid"`
	Invalid    int `json:"invalid" yaml:"invalid"`
	Unreadable int `json:"unreadable" yaml:"unreadable"`
	Errors     int `json:"errors" yaml:"errors"`
	Warnings   int `json:"warnings" yaml:"warnings"`
}

// Report collects the validation results of one run over a directory.
type Report struct {
	RunID     string           `json:"run_id" yaml:"run_id"`
	Directory string           `json:"directory" yaml:"directory"`
	Version   string           `json:"version" yaml:"version"`
	Documents []DocumentReport `json:"documents" yaml:"documents"`
	Summary   Summary          `json:"summary" yaml:"summary"`
}

// New starts an empty report with a fresh run ID.
func New(directory, version string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Directory: directory,
		Version:   version,
		Documents: []DocumentReport{},
	}
}

// Add records the validation result for filename.
func (r *Report) Add(filename, checksum string, result nftmeta.ValidationResult) {
	doc := DocumentReport{
		Filename: filename,
		Checksum: checksum,
		Errors:   nonNil(result.Errors),
		Warnings: nonNil(result.Warnings),
	}
	r.Documents = append(r.Documents, doc)

	r.Summary.Documents++
	r.Summary.Errors += len(doc.Errors)
	r.Summary.Warnings += len(doc.Warnings)
	if doc.Valid() {
		r.Summary.Valid++
	} else {
		r.Summary.Invalid++
	}
}

// AddReadError records a file that could not be read or parsed.
func (r *Report) AddReadError(filename string, err error) {
	r.Documents = append(r.Documents, DocumentReport{
		Filename:  filename,
		ReadError: err.Error(),
		Errors:    []nftmeta.Issue{},
		Warnings:  []nftmeta.Issue{},
	})
	r.Summary.Documents++
	r.Summary.Unreadable++
}

// Failed reports whether the run should exit non-zero.
func (r *Report) Failed(failOnWarnings bool) bool {
	if r.Summary.Invalid > 0 || r.Summary.Unreadable > 0 {
		return true
	}
	return failOnWarnings && r.Summary.Warnings > 0
}

func nonNil(issues []nftmeta.Issue) []nftmeta.Issue {
	if issues == nil {
		return []nftmeta.Issue{}
	}
	return issues
}
