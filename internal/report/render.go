package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

// Render writes r to w in the given output format. styled only affects the
// text format.
func Render(w io.Writer, r *Report, format string, styled bool) error {
	switch format {
	case nftmeta.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case nftmeta.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case nftmeta.OutputFormatText, "":
		return renderText(w, r, newPalette(styled))
	default:
		return fmt.Errorf("%w: unknown output format %q", nftmeta.ErrInvalidConfig, format)
	}
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func renderText(w io.Writer, r *Report, p palette) error {
	ew := &errWriter{w: w}
	ew.printf("%s\n\n", p.title(fmt.Sprintf("HIP412@%s validation of %s", r.Version, r.Directory)))

	for _, doc := range r.Documents {
		switch {
		case doc.ReadError != "":
			ew.printf("%s %s\n", p.err(SymbolCross), doc.Filename)
			ew.printf("    %s\n", p.err(doc.ReadError))
			continue
		case doc.Valid():
			ew.printf("%s %s\n", p.ok(SymbolCheck), doc.Filename)
		default:
			ew.printf("%s %s\n", p.err(SymbolCross), doc.Filename)
		}

		for _, issue := range doc.Errors {
			ew.printf("    %s %s\n", p.err("error"), formatIssue(issue))
		}
		for _, issue := range doc.Warnings {
			ew.printf("    %s %s\n", p.warn("warning"), formatIssue(issue))
		}
	}

	s := r.Summary
	ew.printf("\n%s\n", p.muted(fmt.Sprintf(
		"%d document(s): %d valid, %d invalid, %d unreadable; %d error(s), %d warning(s)",
		s.Documents, s.Valid, s.Invalid, s.Unreadable, s.Errors, s.Warnings)))
	ew.printf("%s\n", p.muted("run "+r.RunID))
	return ew.err
}

func formatIssue(issue nftmeta.Issue) string {
	return fmt.Sprintf("[%s] %s: %s", issue.Type, issue.Path, issue.Msg)
}
