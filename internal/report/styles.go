package report

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Symbols for visual feedback.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

// palette applies the styles, or nothing when output is not a terminal.
type palette struct {
	styled bool
}

func newPalette(styled bool) palette {
	return palette{styled: styled}
}

func (p palette) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func (p palette) title(s string) string { return p.render(TitleStyle, s) }
func (p palette) ok(s string) string    { return p.render(SuccessStyle, s) }
func (p palette) err(s string) string   { return p.render(ErrorStyle, s) }
func (p palette) warn(s string) string  { return p.render(WarningStyle, s) }
func (p palette) muted(s string) string { return p.render(MutedStyle, s) }
