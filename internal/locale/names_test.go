package locale

import (
	"strings"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"en":     "en",
		"en-GB":  "en",
		"de_DE":  "de",
		" fr ":   "fr",
		"":       "",
		"!!bad!": "",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMonthNames(t *testing.T) {
	names := New(nil)

	long := names.MonthNames(Long, "en-GB")
	if len(long) != 12 || long[0] != "January" || long[11] != "December" {
		t.Errorf("unexpected long English months: %v", long)
	}
	short := names.MonthNames(Short, "en-GB")
	if short[0] != "Jan" || short[11] != "Dec" {
		t.Errorf("unexpected short English months: %v", short)
	}

	de := names.MonthNames(Long, "de-DE")
	if de[0] != "Januar" || de[11] != "Dezember" {
		t.Errorf("unexpected German months: %v", de)
	}
	if got := names.MonthNames(Short, "de-DE")[11]; got != "Dez" {
		t.Errorf("expected Dez, got %s", got)
	}

	fallback := names.MonthNames(Long, "xx")
	if fallback[0] != "January" {
		t.Errorf("unknown locale should fall back to English, got %v", fallback)
	}
}

func TestMonthNamesReturnsCopy(t *testing.T) {
	names := New(nil)
	months := names.MonthNames(Long, "en")
	months[0] = "changed"
	if names.MonthNames(Long, "en")[0] != "January" {
		t.Fatal("MonthNames leaked the underlying table")
	}
}

func TestDayNames(t *testing.T) {
	names := New(nil)

	monday := names.DayNames(Long, "en-GB", time.Monday)
	if len(monday) != 7 || monday[0] != "Monday" || monday[6] != "Sunday" {
		t.Errorf("unexpected Monday-first names: %v", monday)
	}

	friday := names.DayNames(Long, "en-GB", time.Friday)
	if friday[0] != "Friday" || friday[6] != "Thursday" {
		t.Errorf("unexpected Friday-first names: %v", friday)
	}

	de := names.DayNames(Long, "de-DE", time.Friday)
	if de[0] != "Freitag" || de[6] != "Donnerstag" {
		t.Errorf("unexpected German names: %v", de)
	}
}

func TestMonthNumber(t *testing.T) {
	names := New(nil)

	tests := []struct {
		name   string
		length Length
		locale string
		want   int
	}{
		{"January", Long, "en", 1},
		{"x", Long, "en", 0},
		{"Jan", Short, "en", 1},
		{"x", Short, "en", 0},
		{"Dezember", Long, "de", 12},
		// containment: the input only has to include a table entry
		{"Marchy", Long, "en", 3},
	}
	for _, tt := range tests {
		if got := names.MonthNumber(tt.name, tt.length, tt.locale); got != tt.want {
			t.Errorf("MonthNumber(%q, %v, %q) = %d, want %d", tt.name, tt.length, tt.locale, got, tt.want)
		}
	}
}

func TestLocalisedMonth(t *testing.T) {
	names := New(nil)
	if got := names.LocalisedMonth(1, Long, "en"); got != "January" {
		t.Errorf("got %q", got)
	}
	if got := names.LocalisedMonth(1, Short, "en"); got != "Jan" {
		t.Errorf("got %q", got)
	}
	if got := names.LocalisedMonth(1, Long, "de-DE"); got != "Januar" {
		t.Errorf("got %q", got)
	}
	if got := names.LocalisedMonth(13, Long, "en"); got != "" {
		t.Errorf("out of range month should be empty, got %q", got)
	}
}

func TestLoadTables(t *testing.T) {
	doc := `
nl-NL:
  months_long: [januari, februari, maart, april, mei, juni, juli, augustus, september, oktober, november, december]
  months_short: [jan, feb, mrt, apr, mei, jun, jul, aug, sep, okt, nov, dec]
  weekdays_long: [zondag, maandag, dinsdag, woensdag, donderdag, vrijdag, zaterdag]
  weekdays_short: [zo, ma, di, wo, do, vr, za]
`
	tables, err := LoadTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadTables failed: %v", err)
	}

	names := New(Builtin.Merge(tables))
	if got := names.LocalisedMonth(3, Short, "nl_NL"); got != "mrt" {
		t.Errorf("expected mrt, got %q", got)
	}
	if got := names.DayNames(Short, "nl", time.Monday)[0]; got != "ma" {
		t.Errorf("expected ma, got %q", got)
	}
	if got := names.LocalisedMonth(3, Short, "en"); got != "Mar" {
		t.Errorf("builtin tables should survive the merge, got %q", got)
	}
}

func TestLoadTablesRejectsIncompleteTable(t *testing.T) {
	doc := `
xx:
  months_long: [one]
`
	if _, err := LoadTables(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for incomplete table")
	}
}

func TestLoadTablesRejectsBadKeys(t *testing.T) {
	table := `
  months_long: [a, b, c, d, e, f, g, h, i, j, k, l]
  months_short: [a, b, c, d, e, f, g, h, i, j, k, l]
  weekdays_long: [a, b, c, d, e, f, g]
  weekdays_short: [a, b, c, d, e, f, g]
`
	tests := []struct {
		name string
		doc  string
	}{
		{"not a tag", "\"not a locale!\":" + table},
		{"same language", "de-DE:" + table + "de_AT:" + table},
	}
	for _, tt := range tests {
		if _, err := LoadTables(strings.NewReader(tt.doc)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestDayHeaders(t *testing.T) {
	n := New(nil)

	got := n.DayHeaders("en", time.Monday, 2)
	want := []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := n.DayHeaders("de", time.Sunday, 3)[0]; got != "Son" {
		t.Errorf("Expected 'Son', got %q", got)
	}
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"Monday", 2, "Mo"},
		{"Mo", 5, "Mo"},
		{"月曜日", 2, "月"},
		{"月曜日", 3, "月"},
		{"Monday", 0, ""},
	}
	for _, tt := range tests {
		if got := Abbreviate(tt.name, tt.width); got != tt.want {
			t.Errorf("Abbreviate(%q, %d) = %q, want %q", tt.name, tt.width, got, tt.want)
		}
	}
}
