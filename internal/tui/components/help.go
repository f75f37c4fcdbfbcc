package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/datepicker-tui/internal/tui/styles"
)

// HelpSection is a titled group of bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpModel renders the keyboard shortcut overlay.
type HelpModel struct {
	width, height int
	sections      []HelpSection
}

// NewHelp creates a HelpModel.
func NewHelp(sections ...HelpSection) *HelpModel {
	return &HelpModel{sections: sections}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. The app closes the overlay.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.sections) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	keyStyle := styles.HelpKey.Width(14).Align(lipgloss.Right).PaddingRight(2)

	var columns []string
	for _, section := range h.sections {
		var col strings.Builder
		col.WriteString(styles.SectionHeader.Render(" " + section.Title + " "))
		col.WriteString("\n")
		for _, b := range section.Bindings {
			if !b.Enabled() {
				continue
			}
			help := b.Help()
			col.WriteString(keyStyle.Render(help.Key) + styles.HelpDesc.Render(help.Desc) + "\n")
		}
		columns = append(columns, col.String())
	}

	colWidth := 40
	if h.width > 0 && len(columns) > 0 {
		colWidth = min(colWidth, h.width/len(columns))
	}
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingRight(2)
	for i, c := range columns {
		columns[i] = columnStyle.Render(c)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Press ESC or ? to close"))
	return b.String()
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}
