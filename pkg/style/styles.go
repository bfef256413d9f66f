package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Message level styles, used for the output sink prefixes
var (
	DebugStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	HintStyle = lipgloss.NewStyle().
			Foreground(HintColor)

	NoteStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	CriticalStyle = lipgloss.NewStyle().
			Foreground(CriticalColor).
			Bold(true).
			Underline(true)
)

// Plan styles
var (
	NewEntryStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ConflictEntryStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Indent pads s by two spaces per level.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
