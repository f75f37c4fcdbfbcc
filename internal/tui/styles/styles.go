// Package styles provides Lip Gloss styles for the date picker.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Every color adapts to light and dark terminals.
var (
	Subtle  = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
	Accent  = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
	Today   = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#87D787"}
	Weekend = lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#D7AF5F"}
	Danger  = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	Ink     = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}
)

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func boxed(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// Layout
var (
	App           = lipgloss.NewStyle().Margin(1, 2)
	Title         = fg(Accent).Bold(true)
	Dialog        = boxed(Accent)
	SectionHeader = lipgloss.NewStyle().Background(Accent).Foreground(Ink).Bold(true)
)

// Grid cells, one per GridCell flag. CellStyle in components picks between
// them when several flags are set.
var (
	CalendarDay           = lipgloss.NewStyle()
	CalendarDayFocused    = lipgloss.NewStyle().Reverse(true).Bold(true)
	CalendarDaySelected   = lipgloss.NewStyle().Background(Accent).Foreground(Ink).Bold(true)
	CalendarDayToday      = fg(Today).Underline(true)
	CalendarDayWeekend    = fg(Weekend)
	CalendarDayOtherMonth = fg(Subtle).Faint(true)
	CalendarDayDisabled   = fg(Subtle).Strikethrough(true)
	CalendarWeekday       = fg(Subtle).Bold(true)
	CalendarNav           = fg(Accent)
)

// Status line and help
var (
	StatusBar        = fg(Subtle)
	StatusBarError   = fg(Danger).Bold(true)
	StatusBarSuccess = fg(Today)
	HelpKey          = fg(Accent).Bold(true)
	HelpDesc         = fg(Subtle)
)

// Field
var (
	Input        = boxed(Subtle)
	InputFocused = boxed(Accent)
	InputLabel   = lipgloss.NewStyle().Bold(true)
	InputError   = fg(Danger).Italic(true)
)
