// Package report aggregates per-document validation results and renders
// them as text, JSON or YAML.
package report
