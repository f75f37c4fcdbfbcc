package calendar

import "time"

// Unit is the granularity of Increment.
type Unit int

const (
	UnitDay Unit = iota
	UnitMonth
	UnitYear
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	}
	return "unknown"
}

// Increment returns d moved by delta units. Day and year steps are exact;
// month and year steps keep the day of the month, clamped to the last day
// of the destination month (May 31 + 1 month is June 30, Feb 29 + 1 year
// is Feb 28).
func (d Date) Increment(unit Unit, delta int) Date {
	switch unit {
	case UnitDay:
		return d.AddDays(delta)
	case UnitMonth:
		return d.addMonths(delta)
	case UnitYear:
		return d.addMonths(delta * 12)
	}
	return d
}

// AddDays returns d moved by n days.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) addMonths(n int) Date {
	index := d.year*12 + (d.month - 1) + n
	year, month := index/12, index%12+1
	if index < 0 {
		year, month = MinYear-1, 1
	}
	return clampYear(year, month, min(d.day, DaysInMonth(month, year)))
}

// clampYear builds a date from parts that are known to be a real Gregorian
// day, saturating at the representable year window.
func clampYear(year, month, day int) Date {
	switch {
	case year < MinYear:
		return Date{year: MinYear, month: 1, day: 1}
	case year > MaxYear:
		return Date{year: MaxYear, month: 12, day: 31}
	}
	return Date{year: year, month: month, day: day}
}

// SetDayOfMonth returns the date with the same year and month and the given
// day, clamped into the month.
func (d Date) SetDayOfMonth(day int) Date {
	day = max(1, min(day, DaysInMonth(d.month, d.year)))
	return Date{year: d.year, month: d.month, day: day}
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date { return d.SetDayOfMonth(1) }

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date { return d.SetDayOfMonth(31) }

// FirstDayOfWeek returns the start of d's week, where weeks begin on
// weekStart. Returns d when d already is that day.
func (d Date) FirstDayOfWeek(weekStart time.Weekday) Date {
	offset := (7 + int(d.Weekday()) - int(weekStart)) % 7
	return d.AddDays(-offset)
}

// LastDayOfWeek returns the end of d's week, where weeks begin on weekStart.
func (d Date) LastDayOfWeek(weekStart time.Weekday) Date {
	offset := (7 + int(weekStart) - int(d.Weekday()) - 1) % 7
	return d.AddDays(offset)
}

// IsFirstDayOfWeek reports whether d begins a week starting on weekStart.
func (d Date) IsFirstDayOfWeek(weekStart time.Weekday) bool {
	return d.Weekday() == weekStart
}

func (d Date) PreviousDay() Date  { return d.AddDays(-1) }
func (d Date) NextDay() Date      { return d.AddDays(1) }
func (d Date) PreviousWeek() Date { return d.AddDays(-7) }
func (d Date) NextWeek() Date     { return d.AddDays(7) }

// PreviousMonthSameDayOfMonth is the absolute month jump backwards.
func (d Date) PreviousMonthSameDayOfMonth() Date { return d.Increment(UnitMonth, -1) }

// NextMonthSameDayOfMonth is the absolute month jump forwards.
func (d Date) NextMonthSameDayOfMonth() Date { return d.Increment(UnitMonth, 1) }

// PreviousMonthSameDayOfWeek goes back four weeks, or five when four weeks
// earlier is still in the same month.
func (d Date) PreviousMonthSameDayOfWeek() Date {
	return d.relativeMonth(-1)
}

// NextMonthSameDayOfWeek goes forward four weeks, or five when four weeks
// later is still in the same month.
func (d Date) NextMonthSameDayOfWeek() Date {
	return d.relativeMonth(1)
}

func (d Date) relativeMonth(direction int) Date {
	jumped := d.AddDays(28 * direction)
	if jumped.month == d.month && jumped.year == d.year {
		jumped = jumped.AddDays(7 * direction)
	}
	return jumped
}

// PreviousYear is one year back, Feb 29 clamping to Feb 28.
func (d Date) PreviousYear() Date { return d.Increment(UnitYear, -1) }

// NextYear is one year forward, Feb 29 clamping to Feb 28.
func (d Date) NextYear() Date { return d.Increment(UnitYear, 1) }
