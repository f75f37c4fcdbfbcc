package calendar

import (
	"testing"
	"time"
)

func TestIncrement(t *testing.T) {
	tests := []struct {
		from  string
		unit  Unit
		delta int
		want  string
	}{
		{"2022-05-21", UnitDay, 1, "2022-05-22"},
		{"2022-05-21", UnitDay, -1, "2022-05-20"},
		{"2021-12-31", UnitDay, 1, "2022-01-01"},
		{"2022-05-21", UnitMonth, 1, "2022-06-21"},
		{"2022-05-21", UnitMonth, -1, "2022-04-21"},
		{"2022-05-31", UnitMonth, 1, "2022-06-30"},
		{"2022-05-31", UnitMonth, -1, "2022-04-30"},
		{"2022-01-15", UnitMonth, -1, "2021-12-15"},
		{"2022-12-15", UnitMonth, 1, "2023-01-15"},
		{"2022-05-21", UnitYear, 1, "2023-05-21"},
		{"2022-05-21", UnitYear, -1, "2021-05-21"},
		{"2024-02-29", UnitYear, 1, "2025-02-28"},
		{"2024-02-29", UnitYear, -1, "2023-02-28"},
		{"2024-02-29", UnitYear, 4, "2028-02-29"},
		{"2999-12-31", UnitDay, 1, "2999-12-31"},
		{"2000-01-01", UnitMonth, -1, "2000-01-01"},
		{"2000-01-01", UnitDay, -1, "2000-01-01"},
		{"2999-06-15", UnitYear, 1, "2999-12-31"},
	}

	for _, tt := range tests {
		from := MustParse(tt.from)
		got := from.Increment(tt.unit, tt.delta)
		if got.String() != tt.want {
			t.Errorf("%s + %d %s = %s, want %s", tt.from, tt.delta, tt.unit, got, tt.want)
		}
		if from.String() != tt.from {
			t.Errorf("Increment mutated receiver: %s", from)
		}
	}
}

func TestMonthIncrementInverse(t *testing.T) {
	start := MustParse("2022-01-01")
	for d := start; d.Year() == 2022; d = d.NextDay() {
		back := d.Increment(UnitMonth, 1).Increment(UnitMonth, -1)
		overflow := d.Day() > DaysInMonth(d.Increment(UnitMonth, 1).Month(), d.Year())
		if !overflow && back != d {
			t.Errorf("%s: month +1/-1 gave %s", d, back)
		}
	}
}

func TestFirstDayOfWeek(t *testing.T) {
	friday := MustParse("2022-05-20")

	tests := []struct {
		weekStart time.Weekday
		want      string
	}{
		{time.Monday, "2022-05-16"},
		{time.Friday, "2022-05-20"},
		{time.Saturday, "2022-05-14"},
		{time.Sunday, "2022-05-15"},
	}
	for _, tt := range tests {
		if got := friday.FirstDayOfWeek(tt.weekStart).String(); got != tt.want {
			t.Errorf("FirstDayOfWeek(%v) = %s, want %s", tt.weekStart, got, tt.want)
		}
	}
}

func TestLastDayOfWeek(t *testing.T) {
	friday := MustParse("2022-05-20")

	tests := []struct {
		weekStart time.Weekday
		want      string
	}{
		{time.Monday, "2022-05-22"},
		{time.Friday, "2022-05-26"},
		{time.Saturday, "2022-05-20"},
		{time.Sunday, "2022-05-21"},
	}
	for _, tt := range tests {
		if got := friday.LastDayOfWeek(tt.weekStart).String(); got != tt.want {
			t.Errorf("LastDayOfWeek(%v) = %s, want %s", tt.weekStart, got, tt.want)
		}
	}
}

func TestWeekBoundsBracketEveryDay(t *testing.T) {
	for ws := time.Sunday; ws <= time.Saturday; ws++ {
		for d := MustParse("2022-02-20"); d.Before(MustParse("2022-04-10")); d = d.NextDay() {
			first := d.FirstDayOfWeek(ws)
			last := d.LastDayOfWeek(ws)
			if d.Before(first) || d.After(last) {
				t.Fatalf("week start %v: %s not within [%s, %s]", ws, d, first, last)
			}
			if !first.IsFirstDayOfWeek(ws) {
				t.Fatalf("week start %v: %s is not a week start", ws, first)
			}
			if last.AddDays(-6) != first {
				t.Fatalf("week start %v: [%s, %s] is not seven days", ws, first, last)
			}
		}
	}
}

func TestMonthSameDayOfWeek(t *testing.T) {
	tests := []struct {
		from string
		prev bool
		want string
	}{
		{"2022-04-14", true, "2022-03-17"},
		{"2022-03-31", true, "2022-02-24"},
		{"2022-02-28", true, "2022-01-31"},
		{"2022-03-17", false, "2022-04-14"},
		{"2022-02-24", false, "2022-03-24"},
		{"2022-01-31", false, "2022-02-28"},
		{"2022-03-01", false, "2022-04-05"},
	}
	for _, tt := range tests {
		d := MustParse(tt.from)
		var got Date
		if tt.prev {
			got = d.PreviousMonthSameDayOfWeek()
		} else {
			got = d.NextMonthSameDayOfWeek()
		}
		if got.String() != tt.want {
			t.Errorf("%s (prev=%v) = %s, want %s", tt.from, tt.prev, got, tt.want)
		}
		if got.Weekday() != d.Weekday() {
			t.Errorf("%s: relative jump changed weekday", tt.from)
		}
	}
}

func TestMonthSameDayOfMonth(t *testing.T) {
	if got := MustParse("2022-04-14").PreviousMonthSameDayOfMonth().String(); got != "2022-03-14" {
		t.Errorf("got %s", got)
	}
	if got := MustParse("2022-03-31").PreviousMonthSameDayOfMonth().String(); got != "2022-02-28" {
		t.Errorf("got %s", got)
	}
	if got := MustParse("2022-03-31").NextMonthSameDayOfMonth().String(); got != "2022-04-30" {
		t.Errorf("got %s", got)
	}
}

func TestDaySteps(t *testing.T) {
	if got := MustParse("2022-01-01").PreviousDay().String(); got != "2021-12-31" {
		t.Errorf("PreviousDay = %s", got)
	}
	if got := MustParse("2022-01-01").PreviousWeek().String(); got != "2021-12-25" {
		t.Errorf("PreviousWeek = %s", got)
	}
	if got := MustParse("2021-12-31").NextWeek().String(); got != "2022-01-07" {
		t.Errorf("NextWeek = %s", got)
	}
	if got := MustParse("2020-02-29").PreviousYear().String(); got != "2019-02-28" {
		t.Errorf("PreviousYear = %s", got)
	}
	if got := MustParse("2020-02-29").NextYear().String(); got != "2021-02-28" {
		t.Errorf("NextYear = %s", got)
	}
}

func TestSetDayOfMonth(t *testing.T) {
	d := MustParse("2022-05-20")
	if got := d.SetDayOfMonth(1).String(); got != "2022-05-01" {
		t.Errorf("SetDayOfMonth(1) = %s", got)
	}
	if got := MustParse("2022-02-10").SetDayOfMonth(31).String(); got != "2022-02-28" {
		t.Errorf("SetDayOfMonth(31) = %s", got)
	}
	if d.String() != "2022-05-20" {
		t.Error("SetDayOfMonth mutated receiver")
	}
}
