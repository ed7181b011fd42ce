package nftmeta_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

func TestExitCodeForError(t *testing.T) {
	parseErr := &nftmeta.ParseError{Filename: "a.json", Err: errors.New("unexpected end of JSON input")}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, nftmeta.ExitSuccess},
		{"general error", errors.New("something went wrong"), nftmeta.ExitGeneralError},
		{"invalid config", fmt.Errorf("bad format: %w", nftmeta.ErrInvalidConfig), nftmeta.ExitConfigError},
		{"validation failed", fmt.Errorf("2 documents: %w", nftmeta.ErrValidationFailed), nftmeta.ExitValidationFailed},
		{"parse error", parseErr, nftmeta.ExitParseError},
		{"wrapped parse error", fmt.Errorf("batch: %w", parseErr), nftmeta.ExitParseError},
		{"missing file", fmt.Errorf("read: %w", fs.ErrNotExist), nftmeta.ExitReadError},
		{"permission denied", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, nftmeta.ExitReadError},
		{"unknown flag", errors.New("unknown flag: --foo"), nftmeta.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), nftmeta.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nftmeta.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	inner := errors.New("invalid character")
	err := &nftmeta.ParseError{Filename: "bad.json", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ParseError should unwrap to its cause")
	}
	if got := err.Error(); got != "failed to parse bad.json as JSON: invalid character" {
		t.Errorf("Error() = %q", got)
	}
}
