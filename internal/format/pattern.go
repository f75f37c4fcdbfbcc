// Package format converts calendar dates to and from user-facing text using
// a small strftime-like pattern language.
//
// Supported directives:
//
//	%d   day, two digits        %-d  day, one or two digits
//	%m   month, two digits      %-m  month, one or two digits
//	%B   long month name        %b   short month name
//	%Y   four-digit year        %y   two-digit year (20yy)
//
// Every other character is literal.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPattern renders dates in ISO form.
const DefaultPattern = "%Y-%m-%d"

var (
	// ErrParse is returned when text does not match a pattern or does not
	// name a real date.
	ErrParse = errors.New("text does not match format")

	// ErrEmptyPattern is returned for patterns without any directive.
	ErrEmptyPattern = errors.New("pattern has no directives")

	// ErrAmbiguousPattern is returned when a variable-width directive is
	// immediately followed by another directive.
	ErrAmbiguousPattern = errors.New("ambiguous pattern")
)

// Directive is one %-prefixed pattern element.
type Directive int

const (
	literal Directive = iota
	DayPadded
	Day
	MonthPadded
	Month
	MonthLong
	MonthShort
	Year
	YearShort
)

var directiveNames = map[Directive]string{
	DayPadded:   "%d",
	Day:         "%-d",
	MonthPadded: "%m",
	Month:       "%-m",
	MonthLong:   "%B",
	MonthShort:  "%b",
	Year:        "%Y",
	YearShort:   "%y",
}

// String returns the directive as written in a pattern.
func (d Directive) String() string {
	if name, ok := directiveNames[d]; ok {
		return name
	}
	return "literal"
}

// variableWidth reports whether the directive can match a varying number of
// characters.
func (d Directive) variableWidth() bool {
	return d == Day || d == Month || d == MonthLong
}

type token struct {
	directive Directive
	text      string
}

// Pattern is a compiled format pattern.
type Pattern struct {
	source string
	tokens []token
}

// Compile tokenizes pattern. Patterns where a variable-width directive is
// directly followed by another directive are rejected because a sequential
// match could split the input in more than one way.
func Compile(pattern string) (*Pattern, error) {
	p := &Pattern{source: pattern}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			p.tokens = append(p.tokens, token{text: lit.String()})
			lit.Reset()
		}
	}

	hasDirective := false
	for i := 0; i < len(pattern); {
		d, width := directiveAt(pattern, i)
		if d == literal {
			lit.WriteByte(pattern[i])
			i++
			continue
		}
		flush()
		p.tokens = append(p.tokens, token{directive: d, text: pattern[i : i+width]})
		hasDirective = true
		i += width
	}
	flush()

	if !hasDirective {
		return nil, fmt.Errorf("%w: %q", ErrEmptyPattern, pattern)
	}
	for i := 0; i+1 < len(p.tokens); i++ {
		cur, next := p.tokens[i], p.tokens[i+1]
		if cur.directive.variableWidth() && next.directive != literal {
			return nil, fmt.Errorf("%w: %s followed by %s in %q", ErrAmbiguousPattern, cur.directive, next.directive, pattern)
		}
	}
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func directiveAt(pattern string, i int) (Directive, int) {
	if pattern[i] != '%' || i+1 >= len(pattern) {
		return literal, 1
	}
	switch pattern[i+1] {
	case 'd':
		return DayPadded, 2
	case 'm':
		return MonthPadded, 2
	case 'B':
		return MonthLong, 2
	case 'b':
		return MonthShort, 2
	case 'Y':
		return Year, 2
	case 'y':
		return YearShort, 2
	case '-':
		if i+2 < len(pattern) {
			switch pattern[i+2] {
			case 'd':
				return Day, 3
			case 'm':
				return Month, 3
			}
		}
	}
	return literal, 1
}

// String returns the pattern source.
func (p *Pattern) String() string { return p.source }

// Directives lists the directives in pattern order.
func (p *Pattern) Directives() []Directive {
	var out []Directive
	for _, t := range p.tokens {
		if t.directive != literal {
			out = append(out, t.directive)
		}
	}
	return out
}
