package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/hy4ri/datepicker-tui/internal/tui/components"
)

// Keymap contains the application level bindings. Rune keys only reach it
// while the popup has focus; the field receives them as typed text.
type Keymap struct {
	Quit     key.Binding
	Help     key.Binding
	CopyText key.Binding
	CopyISO  key.Binding
}

// DefaultKeymap returns the default application bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?/f1", "help"),
		),
		CopyText: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy date"),
		),
		CopyISO: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy ISO date"),
		),
	}
}

// bindings is the help.KeyMap shown in the status line. It switches with
// focus.
type bindings struct {
	app        Keymap
	picker     components.PickerKeymap
	field      []key.Binding
	pickerOpen bool
}

func (b bindings) ShortHelp() []key.Binding {
	if b.pickerOpen {
		return append(b.picker.ShortHelp(), b.app.CopyText, b.app.Help)
	}
	return append(append([]key.Binding{}, b.field...), b.app.Help, b.app.Quit)
}

func (b bindings) FullHelp() [][]key.Binding {
	groups := b.picker.FullHelp()
	return append(groups, append(append([]key.Binding{}, b.field...), b.app.CopyText, b.app.CopyISO, b.app.Help, b.app.Quit))
}

// helpSections groups every binding for the help overlay.
func (b bindings) helpSections() []components.HelpSection {
	p := b.picker
	return []components.HelpSection{
		{Title: "Calendar", Bindings: []key.Binding{
			p.PrevDay, p.NextDay, p.PrevWeek, p.NextWeek, p.WeekStart, p.WeekEnd,
			p.PrevMonth, p.NextMonth, p.PrevYear, p.NextYear,
		}},
		{Title: "Actions", Bindings: []key.Binding{
			p.Pick, p.Close, p.Today, p.PrevPage, p.NextPage, p.SelectMonth,
			b.app.CopyText, b.app.CopyISO,
		}},
		{Title: "Field", Bindings: append(append([]key.Binding{}, b.field...), b.app.Help, b.app.Quit)},
	}
}
