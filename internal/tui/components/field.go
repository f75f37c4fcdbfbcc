package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/picker"
	"github.com/hy4ri/datepicker-tui/internal/tui/styles"
)

// FieldModel is the visible text input bound to a picker.Field.
type FieldModel struct {
	input textinput.Model
	field *picker.Field
	label string

	commitKey key.Binding
	openKey   key.Binding

	width   int
	focused bool
}

// NewField creates the text input for field.
func NewField(field *picker.Field, label string) *FieldModel {
	ti := textinput.New()
	ti.Placeholder = field.Layout().Pattern().String()
	ti.CharLimit = 64
	ti.SetValue(field.Text())

	return &FieldModel{
		input: ti,
		field: field,
		label: label,
		commitKey: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply typed date"),
		),
		openKey: key.NewBinding(
			key.WithKeys("ctrl+o", "alt+down", "tab"),
			key.WithHelp("tab/ctrl+o", "open calendar"),
		),
	}
}

// Field returns the bound value.
func (f *FieldModel) Field() *picker.Field { return f.field }

// Bindings lists the field's own keys for help rendering.
func (f *FieldModel) Bindings() []key.Binding {
	return []key.Binding{f.commitKey, f.openKey}
}

// Init implements Component.
func (f *FieldModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements Component.
func (f *FieldModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.commitKey):
			return f, f.Commit()
		case key.Matches(msg, f.openKey):
			cmd := f.Commit()
			return f, tea.Batch(cmd, func() tea.Msg { return OpenPickerMsg{} })
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// Commit parses the typed text. A failed parse keeps both the typed text
// and the previous value.
func (f *FieldModel) Commit() tea.Cmd {
	typed := f.input.Value()
	if strings.TrimSpace(typed) == "" || typed == f.field.Text() {
		return nil
	}
	if !f.field.Update(typed) {
		return func() tea.Msg {
			return StatusMsg{Text: "Could not read " + typed + " as " + f.field.Layout().Pattern().String(), Error: true}
		}
	}
	f.input.SetValue(f.field.Text())
	d := f.field.Value()
	return func() tea.Msg {
		return DateSelectedMsg{Date: d}
	}
}

// SetDate stores d and shows it formatted.
func (f *FieldModel) SetDate(d calendar.Date) {
	f.field.Set(d)
	f.input.SetValue(f.field.Text())
}

// Value returns the text currently in the input.
func (f *FieldModel) Value() string { return f.input.Value() }

// SetSize implements Component.
func (f *FieldModel) SetSize(width, height int) {
	f.width = width
	f.input.Width = max(10, width-6)
}

// Focus sets focus on the input.
func (f *FieldModel) Focus() {
	f.focused = true
	f.input.Focus()
}

// Blur removes focus.
func (f *FieldModel) Blur() {
	f.focused = false
	f.input.Blur()
}

// Focused returns focus state.
func (f *FieldModel) Focused() bool { return f.focused }

// View implements Component.
func (f *FieldModel) View() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(f.label))
	b.WriteString("  ")
	b.WriteString(styles.HelpDesc.Render(f.field.ToggleLabel()))
	b.WriteString("\n")

	box := styles.Input
	if f.focused {
		box = styles.InputFocused
	}
	b.WriteString(box.Render(f.input.View()))

	if msg := f.field.Validity(); msg != "" {
		b.WriteString("\n")
		b.WriteString(styles.InputError.Render(msg))
	}
	return b.String()
}
