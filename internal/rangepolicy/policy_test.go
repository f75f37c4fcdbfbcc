package rangepolicy

import (
	"testing"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/format"
)

func date(s string) calendar.Date { return calendar.MustParse(s) }

func TestRangeUnderflow(t *testing.T) {
	if New().RangeUnderflow(date("2022-05-11")) {
		t.Error("no minimum should never underflow")
	}

	p := New(WithMin(date("2022-05-11")))
	if p.RangeUnderflow(date("2022-05-11")) {
		t.Error("the minimum itself should not underflow")
	}
	if !p.RangeUnderflow(date("2022-05-10")) {
		t.Error("the day before the minimum should underflow")
	}
}

func TestRangeOverflow(t *testing.T) {
	if New().RangeOverflow(date("2022-05-11")) {
		t.Error("no maximum should never overflow")
	}

	p := New(WithMax(date("2022-05-11")))
	if p.RangeOverflow(date("2022-05-11")) {
		t.Error("the maximum itself should not overflow")
	}
	if !p.RangeOverflow(date("2022-05-12")) {
		t.Error("the day after the maximum should overflow")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   string
		want string
	}{
		{"unbounded", nil, "2022-05-11", "2022-05-11"},
		{"at min", []Option{WithMin(date("2022-05-11"))}, "2022-05-11", "2022-05-11"},
		{"below min", []Option{WithMin(date("2022-05-11"))}, "2022-05-10", "2022-05-11"},
		{"at max", []Option{WithMin(date("2022-05-11")), WithMax(date("2022-05-20"))}, "2022-05-20", "2022-05-20"},
		{"above max", []Option{WithMin(date("2022-05-11")), WithMax(date("2022-05-20"))}, "2022-05-21", "2022-05-20"},
		{"inverted range min wins", []Option{WithMin(date("2022-05-20")), WithMax(date("2022-05-11"))}, "2022-05-01", "2022-05-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.opts...).Clamp(date(tt.in))
			if got.String() != tt.want {
				t.Errorf("Clamp(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestInverted(t *testing.T) {
	if New(WithMin(date("2022-05-11")), WithMax(date("2022-05-20"))).Inverted() {
		t.Error("ordered range reported as inverted")
	}
	if !New(WithMin(date("2022-05-20")), WithMax(date("2022-05-11"))).Inverted() {
		t.Error("inverted range not detected")
	}
}

func TestIsDisabled(t *testing.T) {
	p := New()
	if p.IsDisabled(date("2022-05-14")) {
		t.Error("Saturday should be enabled by default")
	}

	p = New(WithWeekends(false))
	if !p.IsDisabled(date("2022-05-14")) {
		t.Error("Saturday should be disabled without weekends")
	}

	p = New(WithWeekends(false), WithMin(date("2022-05-12")))
	if p.IsDisabled(date("2022-05-12")) {
		t.Error("minimum Thursday should be enabled")
	}
	if !p.IsDisabled(date("2022-05-11")) {
		t.Error("day before minimum should be disabled")
	}

	p = New(WithWeekends(false), WithMin(date("2022-05-12")), WithMax(date("2022-05-17")))
	if p.IsDisabled(date("2022-05-17")) {
		t.Error("maximum Tuesday should be enabled")
	}
	if !p.IsDisabled(date("2022-05-18")) {
		t.Error("day after maximum should be disabled")
	}
	if p.IsDisabled(date("2022-05-16")) {
		t.Error("Monday should be enabled before it is blocked")
	}

	p = New(WithWeekends(false), WithMin(date("2022-05-12")), WithMax(date("2022-05-17")), WithDisallowed(date("2022-05-16")))
	if !p.IsDisabled(date("2022-05-16")) {
		t.Error("blocked Monday should be disabled")
	}
}

func TestIsDisabledMinScenario(t *testing.T) {
	p := New(WithMin(date("2022-05-11")))
	if !p.IsDisabled(date("2022-05-10")) {
		t.Error("2022-05-10 should be disabled")
	}
	if p.IsDisabled(date("2022-05-11")) {
		t.Error("2022-05-11 should be enabled")
	}
}

func TestDisallowedKeepsOrder(t *testing.T) {
	p := New(WithDisallowed(date("2022-05-16"), date("2022-05-02"), date("2022-05-16")))
	got := p.Disallowed()
	if len(got) != 2 || got[0].String() != "2022-05-16" || got[1].String() != "2022-05-02" {
		t.Errorf("unexpected block list: %v", got)
	}
}

func TestValidationMessage(t *testing.T) {
	layout := format.NewEngine(nil, "en").Layout(format.MustCompile("%d %m %Y"))
	underflow := "Date must be %s or later."
	overflow := "Date must be %s or earlier."

	p := New()
	if msg := p.ValidationMessage(date("2022-05-11"), underflow, overflow, layout); msg != "" {
		t.Errorf("unbounded policy produced %q", msg)
	}

	p = New(WithMin(date("2022-05-20")))
	if msg := p.ValidationMessage(date("2022-05-15"), underflow, overflow, layout); msg != "Date must be 20 05 2022 or later." {
		t.Errorf("unexpected underflow message %q", msg)
	}
	if msg := p.ValidationMessage(date("2022-05-15"), "", overflow, layout); msg != "" {
		t.Errorf("empty underflow template should suppress the message, got %q", msg)
	}

	p = New(WithMin(date("2022-05-20")), WithMax(date("2022-05-25")))
	if msg := p.ValidationMessage(date("2022-05-30"), underflow, overflow, layout); msg != "Date must be 25 05 2022 or earlier." {
		t.Errorf("unexpected overflow message %q", msg)
	}
	if msg := p.ValidationMessage(date("2022-05-30"), underflow, "", layout); msg != "" {
		t.Errorf("empty overflow template should suppress the message, got %q", msg)
	}
	if msg := p.ValidationMessage(date("2022-05-22"), underflow, overflow, layout); msg != "" {
		t.Errorf("in-range date produced %q", msg)
	}
}
