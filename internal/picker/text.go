package picker

import (
	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/rangepolicy"
)

// Text holds the user-visible labels. Underflow and Overflow are message
// templates with one "%s" for the bound; empty suppresses the message.
type Text struct {
	Underflow     string `yaml:"underflow" json:"underflow"`
	Overflow      string `yaml:"overflow" json:"overflow"`
	PreviousMonth string `yaml:"previous_month" json:"previous_month"`
	NextMonth     string `yaml:"next_month" json:"next_month"`
	Today         string `yaml:"today" json:"today"`
	ChooseDate    string `yaml:"choose_date" json:"choose_date"`
	ChangeDate    string `yaml:"change_date" json:"change_date"`
}

// DefaultText returns the English labels.
func DefaultText() Text {
	return Text{
		PreviousMonth: "Previous month",
		NextMonth:     "Next month",
		Today:         "Today",
		ChooseDate:    "Choose Date",
		ChangeDate:    "Change Date",
	}
}

// WithDefaults fills every empty label except the message templates.
func (t Text) WithDefaults() Text {
	def := DefaultText()
	if t.PreviousMonth == "" {
		t.PreviousMonth = def.PreviousMonth
	}
	if t.NextMonth == "" {
		t.NextMonth = def.NextMonth
	}
	if t.Today == "" {
		t.Today = def.Today
	}
	if t.ChooseDate == "" {
		t.ChooseDate = def.ChooseDate
	}
	if t.ChangeDate == "" {
		t.ChangeDate = def.ChangeDate
	}
	return t
}

// ToggleLabel labels the button that opens the picker.
func (t Text) ToggleLabel(d calendar.Date, f rangepolicy.DateFormatter) string {
	t = t.WithDefaults()
	if d.IsZero() {
		return t.ChooseDate
	}
	return t.ChangeDate + ", " + f.FormatDate(d)
}
