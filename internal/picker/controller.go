// Package picker holds the navigation state machine behind the date picker
// popup and the text field it is bound to.
package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/grid"
	"github.com/hy4ri/datepicker-tui/internal/rangepolicy"
)

// JumpPolicy decides where month paging lands.
type JumpPolicy int

const (
	// JumpAbsolute keeps the day of the month, clamped.
	JumpAbsolute JumpPolicy = iota
	// JumpRelative keeps the day of the week, four or five weeks away.
	JumpRelative
)

// ParseJumpPolicy reads "absolute" or "relative".
func ParseJumpPolicy(s string) (JumpPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "absolute":
		return JumpAbsolute, nil
	case "relative":
		return JumpRelative, nil
	}
	return JumpAbsolute, fmt.Errorf("unknown jump policy %q", s)
}

func (j JumpPolicy) String() string {
	if j == JumpRelative {
		return "relative"
	}
	return "absolute"
}

// Unit is the size of a focus step.
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitWeekStart
	UnitWeekEnd
	// UnitMonth follows the controller's JumpPolicy.
	UnitMonth
	UnitMonthAbsolute
	UnitMonthRelative
	UnitYear
)

// Direction of a focus step.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// yearSpan is how many years either side of the displayed one the year
// selector offers.
const yearSpan = 10

// Options configure a Controller.
type Options struct {
	FirstDayOfWeek time.Weekday
	Jump           JumpPolicy
	Policy         *rangepolicy.Policy
	Clock          calendar.Clock

	// OnSelect is called after a successful Pick.
	OnSelect func(calendar.Date)
}

// State is the navigation snapshot of an open picker. Each transition
// replaces it wholesale.
type State struct {
	Displayed grid.Month
	Focused   calendar.Date
	Grid      grid.Grid
}

// Controller owns the selected date and, while open, the navigation state.
// It is not safe for concurrent use.
type Controller struct {
	opts     Options
	selected calendar.Date
	state    *State
}

// New creates a closed Controller.
func New(opts Options) *Controller {
	if opts.Policy == nil {
		opts.Policy = rangepolicy.New()
	}
	if opts.Clock == nil {
		opts.Clock = calendar.SystemClock
	}
	return &Controller{opts: opts}
}

// Options returns the controller configuration.
func (c *Controller) Options() Options { return c.opts }

// Policy returns the range policy in effect.
func (c *Controller) Policy() *rangepolicy.Policy { return c.opts.Policy }

// Today returns the current date from the injected clock.
func (c *Controller) Today() calendar.Date { return calendar.Today(c.opts.Clock) }

// Selected returns the selected date, or the zero Date.
func (c *Controller) Selected() calendar.Date { return c.selected }

// SetSelected replaces the selection without notifying OnSelect. Used when
// the bound field changes from outside the popup.
func (c *Controller) SetSelected(d calendar.Date) {
	c.selected = d
	if c.state != nil {
		c.state = c.build(c.state.Displayed, c.state.Focused)
	}
}

// IsOpen reports whether the popup is showing.
func (c *Controller) IsOpen() bool { return c.state != nil }

// State returns the current snapshot and whether the picker is open.
func (c *Controller) State() (State, bool) {
	if c.state == nil {
		return State{}, false
	}
	return *c.state, true
}

// Focused returns the focused date, or the zero Date when closed.
func (c *Controller) Focused() calendar.Date {
	if c.state == nil {
		return calendar.Date{}
	}
	return c.state.Focused
}

// Displayed returns the displayed month. When closed it is the month the
// picker would open on.
func (c *Controller) Displayed() grid.Month {
	if c.state == nil {
		return grid.MonthOf(c.seed(calendar.Date{}))
	}
	return c.state.Displayed
}

// Grid returns the cells of the displayed month.
func (c *Controller) Grid() grid.Grid {
	if c.state == nil {
		return grid.Grid{}
	}
	return c.state.Grid
}

// Open shows the picker focused on seed, the selection or today, in that
// order of preference, clamped into the allowed range.
func (c *Controller) Open(seed calendar.Date) {
	c.show(c.seed(seed))
}

func (c *Controller) seed(seed calendar.Date) calendar.Date {
	d := seed
	if d.IsZero() {
		d = c.selected
	}
	if d.IsZero() {
		d = c.Today()
	}
	return c.opts.Policy.Clamp(d)
}

// Restore reopens the picker on a snapshot left by an earlier transition.
// Unlike Open it neither clamps focus into range nor moves it, so disabled
// and out-of-range focus survive. focus must be one of displayed's cells.
func (c *Controller) Restore(displayed grid.Month, focus calendar.Date) error {
	if focus.IsZero() {
		return fmt.Errorf("restore needs a focused date")
	}
	st := c.build(displayed, focus)
	if !st.Grid.Contains(focus) {
		return fmt.Errorf("%s is not shown in %s", focus, displayed)
	}
	c.state = st
	return nil
}

// show rebuilds the state around focus.
func (c *Controller) show(focus calendar.Date) {
	c.state = c.build(grid.MonthOf(focus), focus)
}

func (c *Controller) build(month grid.Month, focus calendar.Date) *State {
	g := grid.Build(month, c.selected, c.opts.Policy, c.opts.FirstDayOfWeek, c.Today())
	return &State{Displayed: month, Focused: focus, Grid: g}
}

// Close discards the navigation state. The selection is untouched.
func (c *Controller) Close() { c.state = nil }

// Pick selects d unless it is disabled, notifies OnSelect and closes.
func (c *Controller) Pick(d calendar.Date) bool {
	if d.IsZero() || c.opts.Policy.IsDisabled(d) {
		return false
	}
	c.selected = d
	c.Close()
	if c.opts.OnSelect != nil {
		c.opts.OnSelect(d)
	}
	return true
}

// PickFocused picks the focused date.
func (c *Controller) PickFocused() bool {
	if c.state == nil {
		return false
	}
	return c.Pick(c.state.Focused)
}

// MoveFocus steps the focus by one unit. Focus stays on the current page
// when the target cell is visible; otherwise the page moves directly to the
// target's month. Disabled days are focusable.
func (c *Controller) MoveFocus(unit Unit, dir Direction) {
	if c.state == nil {
		return
	}
	c.focus(c.step(c.state.Focused, unit, dir))
}

func (c *Controller) focus(candidate calendar.Date) {
	if c.state.Grid.Contains(candidate) {
		next := *c.state
		next.Focused = candidate
		c.state = &next
		return
	}
	c.state = c.build(grid.MonthOf(candidate), candidate)
}

func (c *Controller) step(d calendar.Date, unit Unit, dir Direction) calendar.Date {
	ws := c.opts.FirstDayOfWeek
	switch unit {
	case UnitDay:
		return d.AddDays(int(dir))
	case UnitWeek:
		return d.AddDays(7 * int(dir))
	case UnitWeekStart:
		return d.FirstDayOfWeek(ws)
	case UnitWeekEnd:
		return d.LastDayOfWeek(ws)
	case UnitMonth:
		if c.opts.Jump == JumpRelative {
			return c.step(d, UnitMonthRelative, dir)
		}
		return c.step(d, UnitMonthAbsolute, dir)
	case UnitMonthAbsolute:
		if dir == Backward {
			return d.PreviousMonthSameDayOfMonth()
		}
		return d.NextMonthSameDayOfMonth()
	case UnitMonthRelative:
		if dir == Backward {
			return d.PreviousMonthSameDayOfWeek()
		}
		return d.NextMonthSameDayOfWeek()
	case UnitYear:
		if dir == Backward {
			return d.PreviousYear()
		}
		return d.NextYear()
	}
	return d
}

// ChangeMonth pages to the adjacent month. The new focus is the jump policy
// applied to the focused day of the month within the displayed month.
func (c *Controller) ChangeMonth(dir Direction) {
	if c.state == nil {
		return
	}
	base := c.state.Displayed.First().SetDayOfMonth(c.state.Focused.Day())
	c.show(c.step(base, UnitMonth, dir))
}

// JumpToday pages to the current month and focuses today.
func (c *Controller) JumpToday() {
	if c.state == nil {
		return
	}
	c.show(c.Today())
}

// SetMonthYear redraws on another month, keeping the focused day of the
// month, clamped.
func (c *Controller) SetMonthYear(month, year int) error {
	if c.state == nil {
		return nil
	}
	first, err := calendar.New(year, month, 1)
	if err != nil {
		return err
	}
	c.show(first.SetDayOfMonth(c.state.Focused.Day()))
	return nil
}

// YearOptions lists the years offered around the displayed year.
func (c *Controller) YearOptions() []int {
	year := c.Displayed().Year
	from := max(calendar.MinYear, year-yearSpan)
	to := min(calendar.MaxYear, year+yearSpan)
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}
