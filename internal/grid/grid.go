// Package grid lays out the day cells of a displayed month.
package grid

import (
	"fmt"
	"time"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
)

// Month identifies a displayed month.
type Month struct {
	Year  int
	Month int
}

// MonthOf returns the month containing d.
func MonthOf(d calendar.Date) Month {
	return Month{Year: d.Year(), Month: d.Month()}
}

// ParseMonth reads a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	d, err := calendar.Parse(s + "-01")
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(d), nil
}

// First returns the first day of the month.
func (m Month) First() calendar.Date { return calendar.MustNew(m.Year, m.Month, 1) }

// Last returns the last day of the month.
func (m Month) Last() calendar.Date {
	return calendar.MustNew(m.Year, m.Month, calendar.DaysInMonth(m.Month, m.Year))
}

// AddMonths moves the month by n, saturating at the calendar bounds.
func (m Month) AddMonths(n int) Month {
	return MonthOf(m.First().Increment(calendar.UnitMonth, n))
}

// Next returns the following month.
func (m Month) Next() Month { return m.AddMonths(1) }

// Prev returns the preceding month.
func (m Month) Prev() Month { return m.AddMonths(-1) }

// Contains reports whether d falls in the month.
func (m Month) Contains(d calendar.Date) bool {
	return d.Year() == m.Year && d.Month() == m.Month
}

// Compare orders months chronologically.
func (m Month) Compare(other Month) int {
	return m.First().Compare(other.First())
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Cell is one rendered day. A cell with a zero Date is padding that fills
// the first or last week of the supported calendar.
type Cell struct {
	Date           calendar.Date
	InCurrentMonth bool
	IsToday        bool
	IsWeekend      bool
	IsSelected     bool
	IsDisabled     bool
}

// IsPadding reports whether the cell stands for no date.
func (c Cell) IsPadding() bool { return c.Date.IsZero() }

// Disabler decides whether a day is selectable.
type Disabler interface {
	IsDisabled(d calendar.Date) bool
}

// Grid is the ordered cell sequence for one displayed month. Its length is
// always a positive multiple of seven.
type Grid struct {
	Month Month
	Cells []Cell
}

var padding = Cell{IsDisabled: true}

// Build lays out month starting on firstDay. selected may be the zero Date
// and policy may be nil. The result depends only on its arguments.
func Build(month Month, selected calendar.Date, policy Disabler, firstDay time.Weekday, today calendar.Date) Grid {
	g := Grid{Month: month, Cells: make([]Cell, 0, 42)}
	first, last := month.First(), month.Last()

	lead := (7 + int(first.Weekday()) - int(firstDay)) % 7
	d := first.AddDays(-lead)
	for i := daysBetween(d, first); i < lead; i++ {
		g.Cells = append(g.Cells, padding)
	}

	for {
		g.Cells = append(g.Cells, Cell{
			Date:           d,
			InCurrentMonth: month.Contains(d),
			IsToday:        !today.IsZero() && d == today,
			IsWeekend:      d.IsWeekend(),
			IsSelected:     !selected.IsZero() && d == selected,
			IsDisabled:     policy != nil && policy.IsDisabled(d),
		})
		next := d.NextDay()
		if next == d {
			// end of the calendar
			break
		}
		if next.After(last) && next.IsFirstDayOfWeek(firstDay) {
			break
		}
		d = next
	}

	for len(g.Cells)%7 != 0 {
		g.Cells = append(g.Cells, padding)
	}
	return g
}

func daysBetween(from, to calendar.Date) int {
	return int(to.Time().Sub(from.Time()).Hours() / 24)
}

// bounds returns the positions of the first and last dated cells.
func (g Grid) bounds() (int, int) {
	lo, hi := 0, len(g.Cells)-1
	for lo <= hi && g.Cells[lo].IsPadding() {
		lo++
	}
	for hi >= lo && g.Cells[hi].IsPadding() {
		hi--
	}
	return lo, hi
}

// First returns the earliest dated cell's date.
func (g Grid) First() calendar.Date {
	lo, _ := g.bounds()
	return g.Cells[lo].Date
}

// Last returns the latest dated cell's date.
func (g Grid) Last() calendar.Date {
	_, hi := g.bounds()
	return g.Cells[hi].Date
}

// Contains reports whether d is one of the grid's cells.
func (g Grid) Contains(d calendar.Date) bool {
	if len(g.Cells) == 0 || d.IsZero() {
		return false
	}
	return !d.Before(g.First()) && !d.After(g.Last())
}

// Index returns the cell position of d, or -1.
func (g Grid) Index(d calendar.Date) int {
	if !g.Contains(d) {
		return -1
	}
	lo, _ := g.bounds()
	return lo + daysBetween(g.First(), d)
}

// Weeks splits the cells into rows of seven.
func (g Grid) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, len(g.Cells)/7)
	for i := 0; i+7 <= len(g.Cells); i += 7 {
		weeks = append(weeks, g.Cells[i:i+7])
	}
	return weeks
}
