package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/datepicker-tui/internal/picker"
)

// PickerKeymap binds keys to picker commands.
type PickerKeymap struct {
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	WeekStart key.Binding
	WeekEnd   key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Pick      key.Binding
	Close     key.Binding
	Today     key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding

	// SelectMonth toggles the month and year selector above the grid.
	SelectMonth key.Binding
}

// DefaultPickerKeymap returns the picker bindings. Vim mode adds hjkl,
// 0 ^ $ and b w B W; without it only the arrow, home/end and page keys
// navigate. Terminals do not report shift+pgup, so year steps use
// ctrl+pgup and ctrl+pgdown.
func DefaultPickerKeymap(vimMode bool) PickerKeymap {
	keys := func(plain []string, vim ...string) []string {
		if vimMode {
			return append(plain, vim...)
		}
		return plain
	}

	return PickerKeymap{
		PrevWeek: key.NewBinding(
			key.WithKeys(keys([]string{"up"}, "k")...),
			key.WithHelp("↑/k", "previous week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys(keys([]string{"down"}, "j")...),
			key.WithHelp("↓/j", "next week"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys(keys([]string{"left"}, "h")...),
			key.WithHelp("←/h", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys(keys([]string{"right"}, "l")...),
			key.WithHelp("→/l", "next day"),
		),
		WeekStart: key.NewBinding(
			key.WithKeys(keys([]string{"home"}, "0", "^")...),
			key.WithHelp("home/0/^", "first day of week"),
		),
		WeekEnd: key.NewBinding(
			key.WithKeys(keys([]string{"end"}, "$")...),
			key.WithHelp("end/$", "last day of week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys(keys([]string{"pgup"}, "b")...),
			key.WithHelp("pgup/b", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys(keys([]string{"pgdown"}, "w")...),
			key.WithHelp("pgdn/w", "next month"),
		),
		PrevYear: key.NewBinding(
			key.WithKeys(keys([]string{"ctrl+pgup"}, "B")...),
			key.WithHelp("ctrl+pgup/B", "previous year"),
		),
		NextYear: key.NewBinding(
			key.WithKeys(keys([]string{"ctrl+pgdown"}, "W")...),
			key.WithHelp("ctrl+pgdn/W", "next year"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "pick"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "show previous month"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "show next month"),
		),
		SelectMonth: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "choose month/year"),
		),
	}
}

// Command maps a key press to a picker command, or CmdNone.
func (k PickerKeymap) Command(msg tea.KeyMsg) picker.Command {
	switch {
	case key.Matches(msg, k.PrevWeek):
		return picker.CmdPrevWeek
	case key.Matches(msg, k.NextWeek):
		return picker.CmdNextWeek
	case key.Matches(msg, k.PrevDay):
		return picker.CmdPrevDay
	case key.Matches(msg, k.NextDay):
		return picker.CmdNextDay
	case key.Matches(msg, k.WeekStart):
		return picker.CmdWeekStart
	case key.Matches(msg, k.WeekEnd):
		return picker.CmdWeekEnd
	case key.Matches(msg, k.PrevMonth):
		return picker.CmdPrevMonth
	case key.Matches(msg, k.NextMonth):
		return picker.CmdNextMonth
	case key.Matches(msg, k.PrevYear):
		return picker.CmdPrevYear
	case key.Matches(msg, k.NextYear):
		return picker.CmdNextYear
	case key.Matches(msg, k.Pick):
		return picker.CmdPick
	case key.Matches(msg, k.Close):
		return picker.CmdClose
	case key.Matches(msg, k.Today):
		return picker.CmdToday
	case key.Matches(msg, k.PrevPage):
		return picker.CmdPrevPage
	case key.Matches(msg, k.NextPage):
		return picker.CmdNextPage
	}
	return picker.CmdNone
}

// ShortHelp implements help.KeyMap.
func (k PickerKeymap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.Pick, k.Close}
}

// FullHelp implements help.KeyMap.
func (k PickerKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.WeekStart, k.WeekEnd},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear, k.PrevPage, k.NextPage},
		{k.Pick, k.Close, k.Today, k.SelectMonth},
	}
}
