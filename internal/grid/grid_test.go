package grid

import (
	"testing"
	"time"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/rangepolicy"
)

func TestBuildShape(t *testing.T) {
	today := calendar.MustParse("2022-04-14")

	for year := 2021; year <= 2024; year++ {
		for month := 1; month <= 12; month++ {
			for wd := time.Sunday; wd <= time.Saturday; wd++ {
				m := Month{Year: year, Month: month}
				g := Build(m, calendar.Date{}, nil, wd, today)

				if len(g.Cells) == 0 || len(g.Cells)%7 != 0 {
					t.Fatalf("%s start %s: %d cells", m, wd, len(g.Cells))
				}
				if g.First().Weekday() != wd {
					t.Errorf("%s start %s: first cell is a %s", m, wd, g.First().Weekday())
				}

				seen := map[int]int{}
				for _, c := range g.Cells {
					if c.InCurrentMonth {
						seen[c.Date.Day()]++
					}
				}
				days := calendar.DaysInMonth(month, year)
				if len(seen) != days {
					t.Errorf("%s start %s: %d current-month days, want %d", m, wd, len(seen), days)
				}
				for day, n := range seen {
					if n != 1 {
						t.Errorf("%s start %s: day %d appears %d times", m, wd, day, n)
					}
				}
			}
		}
	}
}

func TestBuildCalendarEdges(t *testing.T) {
	for _, m := range []Month{{Year: 2000, Month: 1}, {Year: 2999, Month: 12}} {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			g := Build(m, calendar.Date{}, nil, wd, calendar.Date{})

			if len(g.Cells) == 0 || len(g.Cells)%7 != 0 {
				t.Fatalf("%s start %s: %d cells", m, wd, len(g.Cells))
			}
			days := 0
			for i, c := range g.Cells {
				if c.IsPadding() {
					if !c.IsDisabled || c.InCurrentMonth {
						t.Errorf("%s start %s: padding cell %d is selectable", m, wd, i)
					}
					continue
				}
				if want := time.Weekday((int(wd) + i) % 7); c.Date.Weekday() != want {
					t.Errorf("%s start %s: cell %d is a %s, want %s", m, wd, i, c.Date.Weekday(), want)
				}
				if c.InCurrentMonth {
					days++
				}
			}
			if days != 31 {
				t.Errorf("%s start %s: %d current-month days, want 31", m, wd, days)
			}
			if len(g.Weeks())*7 != len(g.Cells) {
				t.Errorf("%s start %s: weeks drop cells", m, wd)
			}
		}
	}

	g := Build(Month{Year: 2000, Month: 1}, calendar.Date{}, nil, time.Monday, calendar.Date{})
	if len(g.Cells) != 42 {
		t.Errorf("expected 42 cells, got %d", len(g.Cells))
	}
	if g.First().String() != "2000-01-01" {
		t.Errorf("expected first dated cell 2000-01-01, got %s", g.First())
	}
	if i := g.Index(calendar.MustParse("2000-01-01")); i != 5 {
		t.Errorf("expected index 5, got %d", i)
	}

	g = Build(Month{Year: 2999, Month: 12}, calendar.Date{}, nil, time.Monday, calendar.Date{})
	if g.Last().String() != "2999-12-31" {
		t.Errorf("expected last dated cell 2999-12-31, got %s", g.Last())
	}
	if !g.Cells[len(g.Cells)-1].IsPadding() {
		t.Error("expected trailing padding after 2999-12-31")
	}
}

func TestBuildApril2022(t *testing.T) {
	m := Month{Year: 2022, Month: 4}
	g := Build(m, calendar.MustParse("2022-04-08"), nil, time.Monday, calendar.MustParse("2022-04-14"))

	if g.First().String() != "2022-03-28" {
		t.Errorf("expected first cell 2022-03-28, got %s", g.First())
	}
	if g.Last().String() != "2022-05-01" {
		t.Errorf("expected last cell 2022-05-01, got %s", g.Last())
	}
	if len(g.Weeks()) != 5 {
		t.Errorf("expected 5 weeks, got %d", len(g.Weeks()))
	}

	if c := g.Cells[0]; c.InCurrentMonth {
		t.Error("2022-03-28 should be outside the displayed month")
	}
	if c := g.Cells[g.Index(calendar.MustParse("2022-04-08"))]; !c.IsSelected {
		t.Error("2022-04-08 should be selected")
	}
	if c := g.Cells[g.Index(calendar.MustParse("2022-04-14"))]; !c.IsToday {
		t.Error("2022-04-14 should be today")
	}
	if c := g.Cells[g.Index(calendar.MustParse("2022-04-09"))]; !c.IsWeekend {
		t.Error("2022-04-09 should be a weekend")
	}
}

func TestBuildFullWeekAfterMonthEnd(t *testing.T) {
	// April 2022 ends on a Saturday; with Sunday starts the next week is
	// entirely May and must not be emitted.
	g := Build(Month{Year: 2022, Month: 4}, calendar.Date{}, nil, time.Sunday, calendar.Date{})
	if g.Last().String() != "2022-04-30" {
		t.Errorf("expected last cell 2022-04-30, got %s", g.Last())
	}
}

func TestBuildDisabled(t *testing.T) {
	policy := rangepolicy.New(rangepolicy.WithMin(calendar.MustParse("2022-05-11")))
	g := Build(Month{Year: 2022, Month: 5}, calendar.Date{}, policy, time.Monday, calendar.Date{})

	for _, c := range g.Cells {
		want := c.Date.Before(calendar.MustParse("2022-05-11"))
		if c.IsDisabled != want {
			t.Errorf("%s disabled = %v, want %v", c.Date, c.IsDisabled, want)
		}
	}
}

func TestGridContainsAndIndex(t *testing.T) {
	g := Build(Month{Year: 2022, Month: 4}, calendar.Date{}, nil, time.Monday, calendar.Date{})

	if !g.Contains(calendar.MustParse("2022-03-28")) {
		t.Error("leading day should be in the grid")
	}
	if g.Contains(calendar.MustParse("2022-03-27")) {
		t.Error("day before the first cell should not be in the grid")
	}
	if g.Contains(calendar.MustParse("2022-05-02")) {
		t.Error("day after the last cell should not be in the grid")
	}
	if i := g.Index(calendar.MustParse("2022-04-01")); i != 4 {
		t.Errorf("expected index 4, got %d", i)
	}
	if i := g.Index(calendar.MustParse("2022-06-01")); i != -1 {
		t.Errorf("expected -1, got %d", i)
	}
}

func TestMonth(t *testing.T) {
	m, err := ParseMonth("2022-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Next().String() != "2023-01" {
		t.Errorf("Next = %s", m.Next())
	}
	if m.Prev().String() != "2022-11" {
		t.Errorf("Prev = %s", m.Prev())
	}
	if m.Last().String() != "2022-12-31" {
		t.Errorf("Last = %s", m.Last())
	}
	if m.Compare(m.Next()) >= 0 {
		t.Error("December should sort before January")
	}

	if _, err := ParseMonth("2022-13"); err == nil {
		t.Error("expected error for month 13")
	}
}
