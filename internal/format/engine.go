package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/locale"
)

// Engine formats and parses dates for one locale.
type Engine struct {
	names  *locale.Names
	locale string
}

// NewEngine creates an Engine. A nil names uses the built-in tables.
func NewEngine(names *locale.Names, loc string) *Engine {
	if names == nil {
		names = locale.New(nil)
	}
	return &Engine{names: names, locale: loc}
}

// Locale returns the engine's locale identifier.
func (e *Engine) Locale() string { return e.locale }

// Names returns the name provider used for %B and %b.
func (e *Engine) Names() *locale.Names { return e.names }

// Format renders d with p. The zero Date renders as "".
func (e *Engine) Format(d calendar.Date, p *Pattern) string {
	if d.IsZero() {
		return ""
	}

	var b strings.Builder
	for _, t := range p.tokens {
		switch t.directive {
		case literal:
			b.WriteString(t.text)
		case DayPadded:
			fmt.Fprintf(&b, "%02d", d.Day())
		case Day:
			b.WriteString(strconv.Itoa(d.Day()))
		case MonthPadded:
			fmt.Fprintf(&b, "%02d", d.Month())
		case Month:
			b.WriteString(strconv.Itoa(d.Month()))
		case MonthLong:
			b.WriteString(e.names.LocalisedMonth(d.Month(), locale.Long, e.locale))
		case MonthShort:
			b.WriteString(e.names.LocalisedMonth(d.Month(), locale.Short, e.locale))
		case Year:
			fmt.Fprintf(&b, "%04d", d.Year())
		case YearShort:
			// not zero padded: 2005 renders as "5"
			b.WriteString(strconv.Itoa(d.Year() % 100))
		}
	}
	return b.String()
}

// FormatISO renders an ISO date string with p, or "" when iso is not a
// valid ISO date.
func (e *Engine) FormatISO(iso string, p *Pattern) string {
	d, err := calendar.Parse(iso)
	if err != nil {
		return ""
	}
	return e.Format(d, p)
}

// Parse reads the first run of text written with p. Text before and after
// the match is ignored, so "on 05 03 2022!" reads with "%d %m %Y". Only the
// leftmost match is considered: when its parts are not a valid date the
// parse fails. When a field is set by more than one directive the last one
// wins.
func (e *Engine) Parse(text string, p *Pattern) (calendar.Date, error) {
	input := []rune(text)
	captures := make([]string, len(p.tokens))
	found := false
	for start := 0; start <= len(input) && !found; start++ {
		found = matchTokens(p.tokens, input, 0, start, captures)
	}
	if !found {
		return calendar.Date{}, fmt.Errorf("%w: %q against %q", ErrParse, text, p.source)
	}

	var year, month, day int
	for i, t := range p.tokens {
		c := captures[i]
		switch t.directive {
		case DayPadded, Day:
			day, _ = strconv.Atoi(c)
		case MonthPadded, Month:
			month, _ = strconv.Atoi(c)
		case MonthLong:
			month = e.names.MonthNumber(c, locale.Long, e.locale)
		case MonthShort:
			month = e.names.MonthNumber(c, locale.Short, e.locale)
		case Year:
			year, _ = strconv.Atoi(c)
		case YearShort:
			yy, _ := strconv.Atoi(c)
			year = 2000 + yy
		}
	}

	d, err := calendar.New(year, month, day)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return d, nil
}

// ParseISO is Parse returning the ISO string, or "" on failure.
func (e *Engine) ParseISO(text string, p *Pattern) string {
	d, err := e.Parse(text, p)
	if err != nil {
		return ""
	}
	return d.String()
}

// matchTokens matches tokens[ti:] against a prefix of input[pos:],
// recording directive captures. Variable-width directives try their longest
// match first and back off on failure.
func matchTokens(tokens []token, input []rune, ti, pos int, captures []string) bool {
	if ti == len(tokens) {
		return true
	}

	t := tokens[ti]
	if t.directive == literal {
		lit := []rune(t.text)
		if pos+len(lit) > len(input) || string(input[pos:pos+len(lit)]) != t.text {
			return false
		}
		return matchTokens(tokens, input, ti+1, pos+len(lit), captures)
	}

	minWidth, maxWidth, class := shape(t.directive)
	run := 0
	for pos+run < len(input) && class(input[pos+run]) && (maxWidth < 0 || run < maxWidth) {
		run++
	}
	for width := run; width >= minWidth; width-- {
		captures[ti] = string(input[pos : pos+width])
		if matchTokens(tokens, input, ti+1, pos+width, captures) {
			return true
		}
	}
	return false
}

// shape returns the width bounds (maxWidth < 0 is unbounded) and character
// class of a directive.
func shape(d Directive) (int, int, func(rune) bool) {
	switch d {
	case DayPadded, MonthPadded, YearShort:
		return 2, 2, isDigit
	case Day, Month:
		return 1, 2, isDigit
	case Year:
		return 4, 4, isDigit
	case MonthShort:
		return 3, 3, isWord
	default:
		return 1, -1, isWord
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Layout binds an Engine to one pattern.
type Layout struct {
	engine  *Engine
	pattern *Pattern
}

// Layout returns a Layout for p.
func (e *Engine) Layout(p *Pattern) Layout {
	return Layout{engine: e, pattern: p}
}

// Pattern returns the bound pattern.
func (l Layout) Pattern() *Pattern { return l.pattern }

// Engine returns the bound engine.
func (l Layout) Engine() *Engine { return l.engine }

// FormatDate renders d.
func (l Layout) FormatDate(d calendar.Date) string { return l.engine.Format(d, l.pattern) }

// FormatISO renders an ISO date string, "" when invalid.
func (l Layout) FormatISO(iso string) string { return l.engine.FormatISO(iso, l.pattern) }

// Parse reads user text.
func (l Layout) Parse(text string) (calendar.Date, error) { return l.engine.Parse(text, l.pattern) }

// ParseISO reads user text into an ISO string, "" on failure.
func (l Layout) ParseISO(text string) string { return l.engine.ParseISO(text, l.pattern) }
