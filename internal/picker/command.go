package picker

import "fmt"

// Command is one user action on an open picker.
type Command int

const (
	CmdNone Command = iota
	CmdPrevDay
	CmdNextDay
	CmdPrevWeek
	CmdNextWeek
	CmdWeekStart
	CmdWeekEnd
	CmdPrevMonth
	CmdNextMonth
	CmdPrevYear
	CmdNextYear
	CmdPick
	CmdClose
	CmdToday
	// CmdPrevPage and CmdNextPage are the month buttons: they page the
	// displayed month instead of moving focus by a month.
	CmdPrevPage
	CmdNextPage
)

var commandNames = map[Command]string{
	CmdPrevDay:   "prev-day",
	CmdNextDay:   "next-day",
	CmdPrevWeek:  "prev-week",
	CmdNextWeek:  "next-week",
	CmdWeekStart: "week-start",
	CmdWeekEnd:   "week-end",
	CmdPrevMonth: "prev-month",
	CmdNextMonth: "next-month",
	CmdPrevYear:  "prev-year",
	CmdNextYear:  "next-year",
	CmdPick:      "pick",
	CmdClose:     "close",
	CmdToday:     "today",
	CmdPrevPage:  "prev-page",
	CmdNextPage:  "next-page",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// ParseCommand reads a command name such as "next-week".
func ParseCommand(name string) (Command, error) {
	for cmd, n := range commandNames {
		if n == name {
			return cmd, nil
		}
	}
	return CmdNone, fmt.Errorf("unknown command %q", name)
}

// Commands lists every command in declaration order.
func Commands() []Command {
	cmds := make([]Command, 0, len(commandNames))
	for c := CmdPrevDay; c <= CmdNextPage; c++ {
		cmds = append(cmds, c)
	}
	return cmds
}

// Apply runs cmd against an open picker and reports whether it was handled.
// Commands are processed one at a time in the order they arrive.
func (c *Controller) Apply(cmd Command) bool {
	if !c.IsOpen() {
		return false
	}

	switch cmd {
	case CmdPrevDay:
		c.MoveFocus(UnitDay, Backward)
	case CmdNextDay:
		c.MoveFocus(UnitDay, Forward)
	case CmdPrevWeek:
		c.MoveFocus(UnitWeek, Backward)
	case CmdNextWeek:
		c.MoveFocus(UnitWeek, Forward)
	case CmdWeekStart:
		c.MoveFocus(UnitWeekStart, Backward)
	case CmdWeekEnd:
		c.MoveFocus(UnitWeekEnd, Forward)
	case CmdPrevMonth:
		c.MoveFocus(UnitMonth, Backward)
	case CmdNextMonth:
		c.MoveFocus(UnitMonth, Forward)
	case CmdPrevYear:
		c.MoveFocus(UnitYear, Backward)
	case CmdNextYear:
		c.MoveFocus(UnitYear, Forward)
	case CmdPick:
		return c.PickFocused()
	case CmdClose:
		c.Close()
	case CmdToday:
		c.JumpToday()
	case CmdPrevPage:
		c.ChangeMonth(Backward)
	case CmdNextPage:
		c.ChangeMonth(Forward)
	default:
		return false
	}
	return true
}
