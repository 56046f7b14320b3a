package ui

import "github.com/charmbracelet/lipgloss"

// Zerah palette: lime primary on a dark surface.
var (
	colorPrimary = lipgloss.Color("#B7CC16")
	colorSurface = lipgloss.Color("#0A3532")
	colorMuted   = lipgloss.Color("244")
	colorDanger  = lipgloss.Color("203")
	colorOK      = lipgloss.Color("78")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	amountStyle = lipgloss.NewStyle().
			Bold(true)

	incomeStyle  = lipgloss.NewStyle().Foreground(colorOK)
	expenseStyle = lipgloss.NewStyle().Foreground(colorDanger)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 2)

	frozenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Foreground(colorMuted).
			Padding(1, 2)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorSurface).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 2)

	pinDotFilled = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	pinDotEmpty  = lipgloss.NewStyle().Foreground(colorMuted)
)

func amountColor(income bool) lipgloss.Style {
	if income {
		return incomeStyle
	}
	return expenseStyle
}
