package report

import (
	"os"

	"golang.org/x/term"
)

// ShouldStyle determines whether text output written to out gets colors.
//
// Returns false if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - out is not a terminal (piped or redirected output)
func ShouldStyle(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(out.Fd()))
}
