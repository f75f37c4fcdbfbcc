package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/datepicker-tui/internal/tui/styles"
)

func (a *App) View() string {
	if a.showHelp {
		return styles.App.Render(a.helpComp.View())
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("📅 Date Picker"))
	b.WriteString("\n\n")
	b.WriteString(a.field.View())

	if popup := a.popup.View(); popup != "" {
		b.WriteString("\n")
		b.WriteString(popup)
	}

	b.WriteString("\n\n")
	b.WriteString(a.renderStatusBar())

	content := b.String()
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, styles.App.Render(content))
	}
	return styles.App.Render(content)
}

func (a *App) renderStatusBar() string {
	var lines []string
	if a.statusMsg != "" {
		style := styles.StatusBarSuccess
		if a.statusErr {
			style = styles.StatusBarError
		}
		lines = append(lines, style.Render(a.statusMsg))
	}

	lines = append(lines, styles.StatusBar.Render(a.help.View(a.keys)))
	return strings.Join(lines, "\n")
}
