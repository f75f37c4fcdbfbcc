// Package locale resolves localized month and weekday names.
package locale

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when a locale has no name table.
const DefaultLanguage = "en"

// Length selects long ("January") or short ("Jan") names.
type Length int

const (
	Long Length = iota
	Short
)

// ParseLength maps "long"/"short" to a Length. Unknown values are Long.
func ParseLength(s string) Length {
	if strings.EqualFold(strings.TrimSpace(s), "short") {
		return Short
	}
	return Long
}

// String returns "long" or "short".
func (l Length) String() string {
	if l == Short {
		return "short"
	}
	return "long"
}

// Source is the locale data collaborator. Weekday lists start on Sunday.
type Source interface {
	Months(language string, length Length) ([]string, bool)
	Weekdays(language string, length Length) ([]string, bool)
}

// Names answers name queries against a Source, falling back to
// DefaultLanguage for locales the source does not know.
type Names struct {
	source Source
}

// New creates Names over source. A nil source uses Builtin.
func New(source Source) *Names {
	if source == nil {
		source = Builtin
	}
	return &Names{source: source}
}

// Normalize reduces a locale identifier such as "de-DE" or "de_DE" to its
// base language ("de"). Unparseable identifiers yield "".
func Normalize(locale string) string {
	tag := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if tag == "" {
		return ""
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	base, _ := parsed.Base()
	return base.String()
}

// MonthNames returns the twelve month names, January first.
func (n *Names) MonthNames(length Length, locale string) []string {
	if names, ok := n.source.Months(Normalize(locale), length); ok {
		return clone(names)
	}
	names, _ := n.source.Months(DefaultLanguage, length)
	return clone(names)
}

// DayNames returns the seven weekday names rotated so that index 0 is
// firstDay.
func (n *Names) DayNames(length Length, locale string, firstDay time.Weekday) []string {
	names, ok := n.source.Weekdays(Normalize(locale), length)
	if !ok {
		names, _ = n.source.Weekdays(DefaultLanguage, length)
	}
	if len(names) != 7 {
		return clone(names)
	}

	rotated := make([]string, 7)
	for i := range rotated {
		rotated[i] = names[(int(firstDay)+i)%7]
	}
	return rotated
}

// MonthNumber returns the month (1-12) whose name is contained in name, or
// 0 when none is. Matching is by containment, so the first table entry
// found inside name wins.
func (n *Names) MonthNumber(name string, length Length, locale string) int {
	for i, month := range n.MonthNames(length, locale) {
		if month != "" && strings.Contains(name, month) {
			return i + 1
		}
	}
	return 0
}

// LocalisedMonth returns the name of month (1-12), or "" when out of range.
func (n *Names) LocalisedMonth(month int, length Length, locale string) string {
	names := n.MonthNames(length, locale)
	if month < 1 || month > len(names) {
		return ""
	}
	return names[month-1]
}

// DayHeaders returns the long weekday names starting at firstDay, each cut
// to width terminal cells.
func (n *Names) DayHeaders(locale string, firstDay time.Weekday, width int) []string {
	names := n.DayNames(Long, locale, firstDay)
	for i, name := range names {
		names[i] = Abbreviate(name, width)
	}
	return names
}

// Abbreviate cuts name to at most width terminal cells. Wide runes count
// double.
func Abbreviate(name string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(name, width, "")
}

func clone(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
