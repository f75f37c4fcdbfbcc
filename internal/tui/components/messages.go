package components

import "github.com/hy4ri/datepicker-tui/internal/calendar"

// DateSelectedMsg is emitted when a day is picked in the popup or a valid
// date is typed into the field.
type DateSelectedMsg struct {
	Date calendar.Date
}

// PickerClosedMsg is emitted when the popup closes without a pick.
type PickerClosedMsg struct{}

// OpenPickerMsg asks the app to open the popup on the field's value.
type OpenPickerMsg struct{}

// StatusMsg carries a one-line status bar message.
type StatusMsg struct {
	Text  string
	Error bool
}
