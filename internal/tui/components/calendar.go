package components

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/datepicker-tui/internal/grid"
	"github.com/hy4ri/datepicker-tui/internal/locale"
	"github.com/hy4ri/datepicker-tui/internal/picker"
	"github.com/hy4ri/datepicker-tui/internal/tui/styles"
)

// PickerConfig is the display configuration of the popup.
type PickerConfig struct {
	Names         *locale.Names
	Locale        string
	DayNameLength int
	Text          picker.Text
	Keys          PickerKeymap
}

// PickerModel renders a picker.Controller as a month grid popup and feeds
// it key presses.
type PickerModel struct {
	ctrl *picker.Controller
	cfg  PickerConfig

	width, height int
	focused       bool
	sel           monthSelect
}

// monthSelect is the month and year selector above the grid. Each change
// redraws the grid on the chosen month straight away.
type monthSelect struct {
	active bool
	onYear bool
}

// NewPicker creates the popup over ctrl.
func NewPicker(ctrl *picker.Controller, cfg PickerConfig) *PickerModel {
	if cfg.Names == nil {
		cfg.Names = locale.New(nil)
	}
	if cfg.DayNameLength < 1 {
		cfg.DayNameLength = 2
	}
	cfg.Text = cfg.Text.WithDefaults()
	return &PickerModel{ctrl: ctrl, cfg: cfg}
}

// Controller returns the navigation state machine behind the popup.
func (p *PickerModel) Controller() *picker.Controller { return p.ctrl }

// Init implements Component.
func (p *PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (p *PickerModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if !p.ctrl.IsOpen() {
		p.sel = monthSelect{}
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.sel.active {
			p.updateSelect(msg)
			return p, nil
		}
		if key.Matches(msg, p.cfg.Keys.SelectMonth) {
			p.sel = monthSelect{active: true}
			return p, nil
		}
		return p, p.apply(p.cfg.Keys.Command(msg))
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return p, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return p, p.apply(picker.CmdPrevPage)
		case tea.MouseButtonWheelDown:
			return p, p.apply(picker.CmdNextPage)
		}
	}
	return p, nil
}

func (p *PickerModel) apply(cmd picker.Command) tea.Cmd {
	switch cmd {
	case picker.CmdNone:
		return nil
	case picker.CmdPick:
		if !p.ctrl.Apply(cmd) {
			return nil
		}
		selected := p.ctrl.Selected()
		return func() tea.Msg {
			return DateSelectedMsg{Date: selected}
		}
	case picker.CmdClose:
		p.ctrl.Apply(cmd)
		return func() tea.Msg {
			return PickerClosedMsg{}
		}
	}
	p.ctrl.Apply(cmd)
	return nil
}

// Selecting reports whether the month and year selector has the keys.
func (p *PickerModel) Selecting() bool { return p.sel.active }

// updateSelect moves between the month and year with left and right and
// changes the value with up and down. Pick, Close or the selector key
// return to the grid.
func (p *PickerModel) updateSelect(msg tea.KeyMsg) {
	k := p.cfg.Keys
	switch {
	case key.Matches(msg, k.PrevDay), key.Matches(msg, k.NextDay), msg.Type == tea.KeyTab:
		p.sel.onYear = !p.sel.onYear
	case key.Matches(msg, k.PrevWeek):
		p.stepSelect(-1)
	case key.Matches(msg, k.NextWeek):
		p.stepSelect(1)
	case key.Matches(msg, k.Pick), key.Matches(msg, k.Close), key.Matches(msg, k.SelectMonth):
		p.sel = monthSelect{}
	}
}

func (p *PickerModel) stepSelect(delta int) {
	m := p.ctrl.Displayed()
	month, year := m.Month, m.Year
	if p.sel.onYear {
		years := p.ctrl.YearOptions()
		i := slices.Index(years, year) + delta
		if i < 0 || i >= len(years) {
			return
		}
		year = years[i]
	} else {
		month = (month+11+delta)%12 + 1
	}
	// both values come from the option lists, so this cannot fail
	_ = p.ctrl.SetMonthYear(month, year)
}

// SetSize implements Component.
func (p *PickerModel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Focus sets focus on the popup.
func (p *PickerModel) Focus() { p.focused = true }

// Blur removes focus.
func (p *PickerModel) Blur() { p.focused = false }

// Focused returns focus state.
func (p *PickerModel) Focused() bool { return p.focused }

// cellWidth fits both the day numbers and the abbreviated day names.
func (p *PickerModel) cellWidth() int {
	return max(2, p.cfg.DayNameLength)
}

// View implements Component.
func (p *PickerModel) View() string {
	st, ok := p.ctrl.State()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.renderHeader(st.Displayed))
	b.WriteString("\n")
	b.WriteString(p.renderNav())
	b.WriteString("\n\n")
	b.WriteString(p.renderWeekdays())
	b.WriteString("\n")
	b.WriteString(p.renderGrid(st))

	style := styles.Dialog
	if !p.focused {
		style = style.BorderForeground(styles.Subtle)
	}
	return style.Render(b.String())
}

func (p *PickerModel) renderHeader(m grid.Month) string {
	month := p.cfg.Names.LocalisedMonth(m.Month, locale.Long, p.cfg.Locale)
	if !p.sel.active {
		return styles.Title.Render(fmt.Sprintf("%s %d", month, m.Year))
	}

	monthStyle, yearStyle := styles.Title, styles.Title
	if p.sel.onYear {
		yearStyle = styles.CalendarDayFocused
	} else {
		monthStyle = styles.CalendarDayFocused
	}
	return monthStyle.Render(month+" ▾") + " " + yearStyle.Render(strconv.Itoa(m.Year)+" ▾")
}

func (p *PickerModel) renderNav() string {
	t := p.cfg.Text
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.CalendarNav.Render("‹ "+t.PreviousMonth),
		"  ",
		styles.CalendarNav.Render(t.Today),
		"  ",
		styles.CalendarNav.Render(t.NextMonth+" ›"),
	)
}

func (p *PickerModel) renderWeekdays() string {
	w := p.cellWidth()
	headers := p.cfg.Names.DayHeaders(p.cfg.Locale, p.ctrl.Options().FirstDayOfWeek, p.cfg.DayNameLength)

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = styles.CalendarWeekday.Render(runewidth.FillLeft(h, w))
	}
	return strings.Join(cells, " ")
}

func (p *PickerModel) renderGrid(st picker.State) string {
	w := p.cellWidth()
	rows := make([]string, 0, 6)
	for _, week := range st.Grid.Weeks() {
		cells := make([]string, len(week))
		for i, c := range week {
			if c.IsPadding() {
				cells[i] = strings.Repeat(" ", w)
				continue
			}
			text := fmt.Sprintf("%*d", w, c.Date.Day())
			cells[i] = CellStyle(c, c.Date == st.Focused).Render(text)
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

// CellStyle picks the style for a grid cell. Focus wins, then selection,
// then disabled, adjacent-month, today and weekend.
func CellStyle(c grid.Cell, focused bool) lipgloss.Style {
	switch {
	case focused:
		return styles.CalendarDayFocused
	case c.IsSelected:
		return styles.CalendarDaySelected
	case c.IsDisabled:
		return styles.CalendarDayDisabled
	case !c.InCurrentMonth:
		return styles.CalendarDayOtherMonth
	case c.IsToday:
		return styles.CalendarDayToday
	case c.IsWeekend:
		return styles.CalendarDayWeekend
	}
	return styles.CalendarDay
}
