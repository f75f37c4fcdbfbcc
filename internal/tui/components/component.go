// Package components provides the date field and picker popup widgets.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a widget the app embeds. It owns its state, handles the
// messages routed to it and renders itself.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable is a Component that takes keyboard input only while focused.
type Focusable interface {
	Component
	Focus()
	Blur()
	Focused() bool
}

var (
	_ Focusable = (*PickerModel)(nil)
	_ Focusable = (*FieldModel)(nil)
	_ Component = (*HelpModel)(nil)
)
