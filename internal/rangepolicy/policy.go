// Package rangepolicy decides which calendar days a picker may select.
package rangepolicy

import (
	"strings"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
)

// DateFormatter renders a date for validation messages.
type DateFormatter interface {
	FormatDate(d calendar.Date) string
}

// Policy combines an optional min/max range, weekend exclusion and an
// explicit block list. The zero Policy allows every date.
type Policy struct {
	min           calendar.Date
	max           calendar.Date
	noWeekends    bool
	disallowed    map[calendar.Date]struct{}
	disallowOrder []calendar.Date
}

// Option configures a Policy.
type Option func(*Policy)

// WithMin sets the earliest selectable date. The zero Date clears it.
func WithMin(d calendar.Date) Option {
	return func(p *Policy) { p.min = d }
}

// WithMax sets the latest selectable date. The zero Date clears it.
func WithMax(d calendar.Date) Option {
	return func(p *Policy) { p.max = d }
}

// WithWeekends controls whether Saturdays and Sundays are selectable.
func WithWeekends(allow bool) Option {
	return func(p *Policy) { p.noWeekends = !allow }
}

// WithDisallowed blocks the given dates.
func WithDisallowed(dates ...calendar.Date) Option {
	return func(p *Policy) {
		if p.disallowed == nil {
			p.disallowed = make(map[calendar.Date]struct{}, len(dates))
		}
		for _, d := range dates {
			if d.IsZero() {
				continue
			}
			if _, ok := p.disallowed[d]; !ok {
				p.disallowOrder = append(p.disallowOrder, d)
			}
			p.disallowed[d] = struct{}{}
		}
	}
}

// New builds a Policy. Weekends are allowed unless WithWeekends(false).
func New(opts ...Option) *Policy {
	p := &Policy{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Min returns the lower bound, if any.
func (p *Policy) Min() (calendar.Date, bool) { return p.min, !p.min.IsZero() }

// Max returns the upper bound, if any.
func (p *Policy) Max() (calendar.Date, bool) { return p.max, !p.max.IsZero() }

// AllowWeekends reports whether weekend days are selectable.
func (p *Policy) AllowWeekends() bool { return !p.noWeekends }

// Disallowed returns the block list in insertion order.
func (p *Policy) Disallowed() []calendar.Date {
	out := make([]calendar.Date, len(p.disallowOrder))
	copy(out, p.disallowOrder)
	return out
}

// Inverted reports whether both bounds are set and min is after max.
// Clamp still applies min first in that case.
func (p *Policy) Inverted() bool {
	return !p.min.IsZero() && !p.max.IsZero() && p.min.After(p.max)
}

// RangeUnderflow reports whether d is before the minimum.
func (p *Policy) RangeUnderflow(d calendar.Date) bool {
	return !p.min.IsZero() && d.Before(p.min)
}

// RangeOverflow reports whether d is after the maximum.
func (p *Policy) RangeOverflow(d calendar.Date) bool {
	return !p.max.IsZero() && d.After(p.max)
}

// Clamp moves d into [min, max]. Underflow is checked first, so min wins
// for an inverted range.
func (p *Policy) Clamp(d calendar.Date) calendar.Date {
	if p.RangeUnderflow(d) {
		return p.min
	}
	if p.RangeOverflow(d) {
		return p.max
	}
	return d
}

// IsDisabled reports whether d is focusable but not selectable.
func (p *Policy) IsDisabled(d calendar.Date) bool {
	if p.RangeUnderflow(d) || p.RangeOverflow(d) {
		return true
	}
	if p.noWeekends && d.IsWeekend() {
		return true
	}
	_, blocked := p.disallowed[d]
	return blocked
}

// ValidationMessage explains why d is out of range, substituting the
// formatted bound for the first "%s" of the matching template. It returns
// "" when d is in range or the template is empty.
func (p *Policy) ValidationMessage(d calendar.Date, underflow, overflow string, f DateFormatter) string {
	switch {
	case p.RangeUnderflow(d):
		if underflow == "" {
			return ""
		}
		return strings.Replace(underflow, "%s", f.FormatDate(p.min), 1)
	case p.RangeOverflow(d):
		if overflow == "" {
			return ""
		}
		return strings.Replace(overflow, "%s", f.FormatDate(p.max), 1)
	}
	return ""
}
