package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/format"
	"github.com/hy4ri/datepicker-tui/internal/grid"
	"github.com/hy4ri/datepicker-tui/internal/locale"
	"github.com/hy4ri/datepicker-tui/internal/picker"
)

type cellJSON struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	InMonth  bool   `json:"in_month"`
	Today    bool   `json:"today"`
	Weekend  bool   `json:"weekend"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled"`
	Padding  bool   `json:"padding,omitempty"`
}

type gridJSON struct {
	Month    string     `json:"month"`
	Title    string     `json:"title"`
	Weekdays []string   `json:"weekdays"`
	Headers  []string   `json:"headers"`
	Cells    []cellJSON `json:"cells"`
}

type navigateJSON struct {
	Focus     string `json:"focus,omitempty"`
	Displayed string `json:"displayed"`
	Open      bool   `json:"open"`
	Selected  string `json:"selected,omitempty"`
}

func (s *Server) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Grid renders one month. month defaults to the current one.
func (s *Server) Grid(c *fiber.Ctx) error {
	today := calendar.Today(s.opts.Clock)

	month := grid.MonthOf(today)
	if raw := c.Query("month"); raw != "" {
		m, err := grid.ParseMonth(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid month")
		}
		month = m
	}

	selected, err := optionalDate(c.Query("selected"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid selected date")
	}

	g := grid.Build(month, selected, s.opts.Policy, s.opts.FirstDayOfWeek, today)
	loc := s.cfg.Picker.Locale

	out := gridJSON{
		Month:    month.String(),
		Title:    fmt.Sprintf("%s %d", s.names.LocalisedMonth(month.Month, locale.Long, loc), month.Year),
		Weekdays: s.names.DayNames(locale.Long, loc, s.opts.FirstDayOfWeek),
		Headers:  s.names.DayHeaders(loc, s.opts.FirstDayOfWeek, s.cfg.Picker.DayNameLength),
		Cells:    make([]cellJSON, 0, len(g.Cells)),
	}
	for _, cell := range g.Cells {
		out.Cells = append(out.Cells, cellJSON{
			Date:     cell.Date.String(),
			Day:      cell.Date.Day(),
			InMonth:  cell.InCurrentMonth,
			Today:    cell.IsToday,
			Weekend:  cell.IsWeekend,
			Selected: cell.IsSelected,
			Disabled: cell.IsDisabled,
			Padding:  cell.IsPadding(),
		})
	}
	return c.JSON(out)
}

// Format renders an ISO date. An invalid date renders as "".
func (s *Server) Format(c *fiber.Ctx) error {
	layout, err := s.layoutFor(c.Query("pattern"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"text": layout.FormatISO(c.Query("date"))})
}

// Parse reads text with the pattern and answers with the ISO date.
func (s *Server) Parse(c *fiber.Ctx) error {
	layout, err := s.layoutFor(c.Query("pattern"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	d, err := layout.Parse(c.Query("text"))
	if err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(fiber.Map{"date": d.String()})
}

// Validate reports whether a date may be picked.
func (s *Server) Validate(c *fiber.Ctx) error {
	d, err := calendar.Parse(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	policy := s.opts.Policy
	return c.JSON(fiber.Map{
		"date":      d.String(),
		"disabled":  policy.IsDisabled(d),
		"underflow": policy.RangeUnderflow(d),
		"overflow":  policy.RangeOverflow(d),
		"message":   policy.ValidationMessage(d, s.text.Underflow, s.text.Overflow, s.layout),
	})
}

// Navigate replays one controller command on the snapshot the client
// sends back: focus, the displayed month (defaults to focus's month) and
// the selection. Without focus the picker opens the way the popup does.
// Focus is empty once the command closed the picker.
func (s *Server) Navigate(c *fiber.Ctx) error {
	focus, err := optionalDate(c.Query("focus"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid focus date")
	}
	selected, err := optionalDate(c.Query("selected"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid selected date")
	}
	cmd, err := picker.ParseCommand(c.Query("command"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	ctrl := picker.New(s.opts)
	ctrl.SetSelected(selected)

	raw := c.Query("displayed")
	switch {
	case focus.IsZero() && raw != "":
		return apiError(c, fiber.StatusBadRequest, "displayed needs a focus date")
	case focus.IsZero():
		ctrl.Open(calendar.Date{})
	default:
		displayed := grid.MonthOf(focus)
		if raw != "" {
			if displayed, err = grid.ParseMonth(raw); err != nil {
				return apiError(c, fiber.StatusBadRequest, "invalid displayed month")
			}
		}
		if err := ctrl.Restore(displayed, focus); err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	ctrl.Apply(cmd)

	out := navigateJSON{
		Focus:     ctrl.Focused().String(),
		Displayed: ctrl.Displayed().String(),
		Open:      ctrl.IsOpen(),
		Selected:  ctrl.Selected().String(),
	}
	return c.JSON(out)
}

func (s *Server) layoutFor(pattern string) (format.Layout, error) {
	if pattern == "" {
		return s.layout, nil
	}
	p, err := format.Compile(pattern)
	if err != nil {
		return format.Layout{}, err
	}
	return s.layout.Engine().Layout(p), nil
}

func optionalDate(raw string) (calendar.Date, error) {
	if raw == "" {
		return calendar.Date{}, nil
	}
	return calendar.Parse(raw)
}
