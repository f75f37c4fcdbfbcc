package format

import (
	"errors"
	"testing"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/locale"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{"%Y-%m-%d", nil},
		{"%d %B %Y", nil},
		{"%d%m%Y", nil},
		{"%-d/%-m/%y", nil},
		{"100%", ErrEmptyPattern},
		{"", ErrEmptyPattern},
		{"%-d%m%Y", ErrAmbiguousPattern},
		{"%B%Y", ErrAmbiguousPattern},
		{"%-m%-d", ErrAmbiguousPattern},
	}

	for _, tt := range tests {
		_, err := Compile(tt.pattern)
		if tt.wantErr == nil && err != nil {
			t.Errorf("Compile(%q) unexpected error: %v", tt.pattern, err)
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
		}
	}
}

func TestDirectives(t *testing.T) {
	got := MustCompile("%-d. %B %Y").Directives()
	want := []Directive{Day, MonthLong, Year}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("directive %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFormat(t *testing.T) {
	engine := NewEngine(nil, "en-GB")

	tests := []struct {
		pattern string
		iso     string
		want    string
	}{
		{"%d %m %Y", "2022-03-05", "05 03 2022"},
		{"%-d %-m %y", "2022-03-05", "5 3 22"},
		{"%d %B %Y", "2022-03-05", "05 March 2022"},
		{"%d %b %Y", "2022-03-05", "05 Mar 2022"},
		{"%Y-%m-%d", "2022-03-05", "2022-03-05"},
		{"%y", "2005-01-01", "5"},
		{"100%% %d", "2022-03-05", "100%% 05"},
		{"%d %m %Y", "20220305", ""},
		{"%d %m %Y", "2022-03-05T00:00:00Z", ""},
		{"%d %m %Y", "2022-02-30", ""},
	}

	for _, tt := range tests {
		got := engine.FormatISO(tt.iso, MustCompile(tt.pattern))
		if got != tt.want {
			t.Errorf("FormatISO(%q, %q) = %q, want %q", tt.iso, tt.pattern, got, tt.want)
		}
	}
}

func TestFormatLocalized(t *testing.T) {
	engine := NewEngine(locale.New(nil), "de-DE")
	got := engine.Format(calendar.MustParse("2022-03-05"), MustCompile("%-d. %B %Y"))
	if got != "5. März 2022" {
		t.Errorf("got %q", got)
	}
}

func TestParse(t *testing.T) {
	engine := NewEngine(nil, "en-GB")

	tests := []struct {
		pattern string
		text    string
		want    string
	}{
		{"%d %m %Y", "05 03 2022", "2022-03-05"},
		{"%-d %-m %y", "5 3 22", "2022-03-05"},
		{"%-d %-m %y", "15 12 22", "2022-12-15"},
		{"%d %B %Y", "05 March 2022", "2022-03-05"},
		{"%d %b %Y", "05 Mar 2022", "2022-03-05"},
		{"%d/%m/%Y", " 19/03/2022 ", "2022-03-19"},
		{"%d %m %Y", "on 05 03 2022", "2022-03-05"},
		{"%d %m %Y", "105 03 2022", "2022-03-05"},
		{"%d %m %Y", "05 03 2022!", "2022-03-05"},
		{"%d %m %Y", "due 05 03 2022 at noon", "2022-03-05"},
		{"%d%m%Y", "05032022", "2022-03-05"},
		{"%B %Y", "March 2022", ""},
		{"%d %m %Y", "05 Mar 2022", ""},
		{"%d %m %Y", "05-03-2022", ""},
		{"%d %m %Y", "05 03 202", ""},
		{"%d %m %Y", "05 3 2022", ""},
		{"%d %m %Y", "05 03 20221", "2022-03-05"},
		{"%d %m %Y", "05 03 1999", ""},
		{"%d %m %Y", "05 03 3000", ""},
		{"%d %m %Y", "31 02 2022", ""},
		{"%d %B %Y", "05 Smarch 2022", ""},
		{"%d %m", "05 03", ""},
	}

	for _, tt := range tests {
		got := engine.ParseISO(tt.text, MustCompile(tt.pattern))
		if got != tt.want {
			t.Errorf("Parse(%q, %q) = %q, want %q", tt.text, tt.pattern, got, tt.want)
		}
	}
}

func TestParseBacktracksVariableWidth(t *testing.T) {
	engine := NewEngine(nil, "en")
	// %B is greedy over word characters and must give back the "x"
	d, err := engine.Parse("05 Marchx 2022", MustCompile("%d %Bx %Y"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2022-03-05" {
		t.Errorf("got %s", d)
	}
}

func TestParseErrors(t *testing.T) {
	engine := NewEngine(nil, "en")
	p := MustCompile("%d %m %Y")

	_, err := engine.Parse("nope", p)
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}

	_, err = engine.Parse("30 02 2022", p)
	if !errors.Is(err, ErrParse) || !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrParse wrapping ErrInvalidDate, got %v", err)
	}
}

func TestParseUsesLeftmostMatch(t *testing.T) {
	engine := NewEngine(nil, "en")
	p := MustCompile("%d %m %Y")

	d, err := engine.Parse("05 03 2022 or 06 03 2022", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2022-03-05" {
		t.Errorf("expected the first date, got %s", d)
	}

	// the leftmost match decides even when a later one would be valid
	if _, err := engine.Parse("31 02 2022 or 06 03 2022", p); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParseLastDirectiveWins(t *testing.T) {
	engine := NewEngine(nil, "en")
	d, err := engine.Parse("01 03 2022 05", MustCompile("%d %m %Y %d"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2022-03-05" {
		t.Errorf("expected the later %%d to win, got %s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	engine := NewEngine(nil, "en-GB")
	patterns := []string{
		"%Y-%m-%d",
		"%d %m %Y",
		"%-d/%-m/%Y",
		"%d %B %Y",
		"%b %-d, %Y",
		"%m.%d.%y",
		"%B %-d %Y",
	}

	for _, pattern := range patterns {
		p := MustCompile(pattern)
		for d := calendar.MustParse("2020-01-01"); d.Before(calendar.MustParse("2021-01-01")); d = d.NextDay() {
			text := engine.Format(d, p)
			back, err := engine.Parse(text, p)
			if err != nil {
				t.Fatalf("%s: parse(%q) failed: %v", pattern, text, err)
			}
			if back != d {
				t.Fatalf("%s: %s -> %q -> %s", pattern, d, text, back)
			}
		}
	}
}

func TestLayout(t *testing.T) {
	layout := NewEngine(nil, "en").Layout(MustCompile("%d %b %Y"))
	if got := layout.FormatISO("2022-05-20"); got != "20 May 2022" {
		t.Errorf("FormatISO = %q", got)
	}
	if got := layout.ParseISO("20 May 2022"); got != "2022-05-20" {
		t.Errorf("ParseISO = %q", got)
	}
	if got := layout.FormatDate(calendar.Date{}); got != "" {
		t.Errorf("zero date should format empty, got %q", got)
	}
}
