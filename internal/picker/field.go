package picker

import (
	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/format"
	"github.com/hy4ri/datepicker-tui/internal/rangepolicy"
)

// Field pairs the ISO value of a date input with the text the user sees.
// A failed parse never touches the value.
type Field struct {
	layout format.Layout
	policy *rangepolicy.Policy
	text   Text

	value calendar.Date
	input string
}

// NewField creates an empty field.
func NewField(layout format.Layout, policy *rangepolicy.Policy, text Text) *Field {
	if policy == nil {
		policy = rangepolicy.New()
	}
	return &Field{layout: layout, policy: policy, text: text}
}

// Value returns the current date, or the zero Date.
func (f *Field) Value() calendar.Date { return f.value }

// ISO returns the value as YYYY-MM-DD, or "".
func (f *Field) ISO() string { return f.value.String() }

// Text returns what the visible input shows.
func (f *Field) Text() string { return f.input }

// Layout returns the format used for the visible text.
func (f *Field) Layout() format.Layout { return f.layout }

// Set stores d and re-renders the visible text.
func (f *Field) Set(d calendar.Date) {
	f.value = d
	f.input = f.layout.FormatDate(d)
}

// SetValue stores an ISO date. "" clears the field; anything else that is
// not a valid ISO date is rejected and leaves the field unchanged.
func (f *Field) SetValue(iso string) error {
	if iso == "" {
		f.Set(calendar.Date{})
		return nil
	}
	d, err := calendar.Parse(iso)
	if err != nil {
		return err
	}
	f.Set(d)
	return nil
}

// Update takes typed text. On a successful parse the value changes and the
// text is normalised; otherwise the text is kept as typed and the value is
// left alone. It reports whether the value changed.
func (f *Field) Update(text string) bool {
	f.input = text
	d, err := f.layout.Parse(text)
	if err != nil {
		return false
	}
	f.Set(d)
	return true
}

// Validity returns the range message for the current value, or "".
func (f *Field) Validity() string {
	if f.value.IsZero() {
		return ""
	}
	return f.policy.ValidationMessage(f.value, f.text.Underflow, f.text.Overflow, f.layout)
}

// ToggleLabel labels the picker button for the current value.
func (f *Field) ToggleLabel() string {
	return f.text.ToggleLabel(f.value, f.layout)
}
