package form

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2)
)

func (m Model) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Contact Us"))
	content.WriteString("\n\n")

	for f := fieldName; f < fieldCount; f++ {
		content.WriteString(labelStyle.Render(fieldLabels[f]))
		content.WriteString("\n")
		content.WriteString(m.inputs[f].View())
		content.WriteString("\n")
		if errMsg, ok := m.errors[f]; ok {
			content.WriteString(errorStyle.Render("✗ " + errMsg))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	content.WriteString(m.statusView())
	content.WriteString(helpStyle.Render("tab/shift+tab: move · enter: next/submit · ctrl+s: submit · esc: dismiss/quit · ctrl+c: quit"))

	return containerStyle.Render(content.String())
}

func (m Model) statusView() string {
	switch m.status {
	case statusLoading:
		return m.spinner.View() + loadingStyle.Render(m.statusMessage) + "\n"
	case statusSuccess:
		return successStyle.Render("✓ "+m.statusMessage) + "\n"
	case statusError:
		return errorStyle.Render("✗ "+m.statusMessage) + "\n"
	default:
		return ""
	}
}
