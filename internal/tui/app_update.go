package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/config"
	"github.com/hy4ri/datepicker-tui/internal/tui/components"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		if a.focus == FocusPicker && !a.showHelp {
			_, cmd := a.popup.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.field.SetSize(min(msg.Width, 48), 3)
		a.popup.SetSize(msg.Width, msg.Height)
		a.helpComp.SetSize(msg.Width, msg.Height)
		a.help.Width = msg.Width
		return a, nil

	case components.OpenPickerMsg:
		a.openPicker()
		return a, nil

	case components.PickerClosedMsg:
		a.focusField()
		a.logf("closed without a pick")
		return a, nil

	case components.DateSelectedMsg:
		return a, a.handleSelected(msg.Date)

	case components.StatusMsg:
		a.statusMsg = msg.Text
		a.statusErr = msg.Error
		return a, nil
	}

	_, cmd := a.field.Update(msg)
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if a.showHelp {
		if msg.Type == tea.KeyEsc || key.Matches(msg, a.keymap.Help) {
			a.showHelp = false
		}
		return a, nil
	}

	// Typed characters belong to the field.
	if a.focus == FocusField {
		if msg.Type != tea.KeyRunes && key.Matches(msg, a.keymap.Help) {
			a.showHelp = true
			return a, nil
		}
		_, cmd := a.field.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, a.keymap.CopyText):
		return a, a.copyDate(a.ctrl.Focused(), false)
	case key.Matches(msg, a.keymap.CopyISO):
		return a, a.copyDate(a.ctrl.Focused(), true)
	}

	_, cmd := a.popup.Update(msg)
	return a, cmd
}

// handleSelected commits a date picked in the popup or typed in the field.
func (a *App) handleSelected(d calendar.Date) tea.Cmd {
	a.field.SetDate(d)
	a.ctrl.SetSelected(d)
	if !a.ctrl.IsOpen() {
		a.focusField()
	}

	text := a.layout.FormatDate(d)
	a.logf("selected %s (%s)", d, text)
	a.statusMsg = "Selected " + text
	a.statusErr = false
	if v := a.field.Field().Validity(); v != "" {
		a.statusMsg = v
		a.statusErr = true
	}

	if a.statePath != "" {
		if err := config.SaveState(a.statePath, &config.State{Selected: d}); err != nil {
			a.logf("failed to save state: %v", err)
			a.statusMsg = "Failed to save selection: " + err.Error()
			a.statusErr = true
		}
	}

	var cmds []tea.Cmd
	if a.cfg.UI.CopyOnSelect {
		cmds = append(cmds, a.copyDate(d, false))
	}
	if a.cfg.UI.NotifyOnSelect {
		notify := a.notifyFn
		cmds = append(cmds, func() tea.Msg {
			if err := notify("datepicker", "Selected "+text); err != nil {
				a.logf("failed to send notification: %v", err)
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// copyDate copies d formatted, or as YYYY-MM-DD when iso is set.
func (a *App) copyDate(d calendar.Date, iso bool) tea.Cmd {
	if d.IsZero() {
		return nil
	}
	content := a.layout.FormatDate(d)
	if iso {
		content = d.String()
	}
	copyFn := a.copyFn
	return func() tea.Msg {
		if err := copyFn(content); err != nil {
			return components.StatusMsg{Text: "Failed to copy: " + err.Error(), Error: true}
		}
		return components.StatusMsg{Text: "Copied: " + content}
	}
}
