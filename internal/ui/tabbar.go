package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabs = []struct {
	view  View
	label string
	key   string
}{
	{ViewHome, "Home", "1"},
	{ViewWallets, "Wallets", "2"},
	{ViewSend, "Send", "3"},
	{ViewCards, "Cards", "4"},
	{ViewEngine, "Engine", "5"},
}

func (a *App) tabBarView() string {
	var rendered []string
	for _, t := range tabs {
		label := fmt.Sprintf("%s %s", t.key, t.label)
		if t.view == a.view {
			rendered = append(rendered, tabActiveStyle.Render(label))
		} else {
			rendered = append(rendered, tabStyle.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
	sep := helpStyle.Render(strings.Repeat("─", lipgloss.Width(bar)))
	return lipgloss.JoinVertical(lipgloss.Left, sep, bar)
}
