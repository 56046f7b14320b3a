package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zerah-labs/zerah/internal/constants"
	"github.com/zerah-labs/zerah/internal/ui/flow"
)

const (
	engineLocked     flow.Stage = "locked"
	engineActivating flow.Stage = "activating"
	engineActive     flow.Stage = "active"
)

type engineTab int

const (
	engineInvoices engineTab = iota
	enginePayroll
	engineHedging
)

// engineScreen is the business tools surface: a locked pitch, a
// simulated activation delay, then the invoices/payroll/hedging tabs
// over showcase data.
type engineScreen struct {
	deps    Deps
	machine *flow.Machine
	spin    spinner.Model
	tab     engineTab
}

func newEngineScreen(deps Deps) *engineScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	return &engineScreen{
		deps:    deps,
		machine: flow.New(engineLocked, engineActivating, engineActive),
		spin:    sp,
	}
}

func (s *engineScreen) Init() tea.Cmd {
	return nil
}

func (s *engineScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.AdvanceMsg:
		s.machine.Apply(msg)
		return s, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		if s.machine.Stage() == engineActivating {
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		switch s.machine.Stage() {
		case engineLocked:
			if msg.String() == "enter" {
				s.machine.Advance()
				s.deps.Log.Info().Msg("engine activation started")
				return s, tea.Batch(
					s.spin.Tick,
					s.machine.AutoAdvance(constants.EngineActivationDelay, engineActive),
				)
			}
		case engineActive:
			switch msg.String() {
			case "tab", "right", "l":
				s.tab = (s.tab + 1) % 3
			case "shift+tab", "left", "h":
				s.tab = (s.tab + 2) % 3
			case "i":
				s.tab = engineInvoices
			case "p":
				s.tab = enginePayroll
			case "g":
				s.tab = engineHedging
			}
		}
	}
	return s, nil
}

func (s *engineScreen) View() string {
	switch s.machine.Stage() {
	case engineActivating:
		return processingView(s.spin, "Igniting Engine", "Verifying credentials and preparing your business environment...")
	case engineActive:
		return s.activeView()
	default:
		return s.lockedView()
	}
}

func (s *engineScreen) lockedView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Zerah Engine") + "\n")
	b.WriteString(subtitleStyle.Render("High-performance business tools") + "\n\n")

	pitch := "Power Up Your Business\n\n" +
		"Unlock the full potential of Zerah with our Pro Engine.\n" +
		"Automate payroll, manage international invoices, and\n" +
		"lock-in exchange rates.\n\n" +
		"• Smart Global Invoicing\n" +
		"• Multi-currency Team Payroll\n" +
		"• FX Risk Hedging & Rate Lock"
	b.WriteString(cardStyle.Render(pitch) + "\n")
	b.WriteString(subtitleStyle.Render("Starting from $49.99/month") + "\n\n")
	b.WriteString(helpStyle.Render("enter activate engine pro"))
	return b.String()
}

func (s *engineScreen) activeView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Zerah Engine") + " " + bannerStyle.Render("PRO") + "\n\n")

	names := []string{"Invoices", "Payroll", "Hedging"}
	var tabs []string
	for i, name := range names {
		if engineTab(i) == s.tab {
			tabs = append(tabs, tabActiveStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, tabs...) + "\n\n")

	switch s.tab {
	case enginePayroll:
		b.WriteString(s.payrollView())
	case engineHedging:
		b.WriteString(s.hedgingView())
	default:
		b.WriteString(s.invoicesView())
	}

	b.WriteString("\n" + helpStyle.Render("tab/←/→ switch • i invoices • p payroll • g hedging"))
	return b.String()
}

func (s *engineScreen) invoicesView() string {
	invoices := []struct {
		id, client, amount, status string
		paid                       bool
	}{
		{"INV-001", "Acme Corp", "$4,200.00", "Pending", false},
		{"INV-002", "Stark Ind.", "€1,850.50", "Paid", true},
		{"INV-003", "Wayne Ent.", "£3,000.00", "Overdue", false},
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("OUTSTANDING INVOICES") + "\n")
	for _, inv := range invoices {
		status := errorStyle.Render(inv.status)
		if inv.paid {
			status = incomeStyle.Render(inv.status)
		} else if inv.status == "Pending" {
			status = subtitleStyle.Render(inv.status)
		}
		b.WriteString(fmt.Sprintf("  %-12s %-12s %10s  %s\n",
			inv.client, subtitleStyle.Render(inv.id), inv.amount, status))
	}
	return b.String()
}

func (s *engineScreen) payrollView() string {
	team := []struct {
		name, role, amount string
	}{
		{"Sarah Miller", "Dev Lead", "4,500 USD"},
		{"Jan Klaus", "UI Designer", "3,200 EUR"},
		{"Lekan Ade", "Content", "800k NGN"},
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("NEXT PAY CYCLE") + "\n")
	b.WriteString("Oct 31, 2024   " + subtitleStyle.Render("Total Payroll ") +
		amountStyle.Render("$12,450.00") + "\n\n")
	b.WriteString(labelStyle.Render("TEAM MEMBERS (12)") + "\n")
	for _, p := range team {
		b.WriteString(fmt.Sprintf("  %-14s %-12s %12s\n",
			p.name, subtitleStyle.Render(p.role), p.amount))
	}
	return b.String()
}

func (s *engineScreen) hedgingView() string {
	contract := "FX RATE PROTECTION\n\n" +
		"Locked Pair       USD / EUR\n" +
		"Guaranteed Rate   0.9234\n" +
		"Contract Value    $50,000.00\n\n" +
		"Expires in 14 days"

	var b strings.Builder
	b.WriteString(panelStyle.Render(contract) + "\n\n")
	b.WriteString(subtitleStyle.Render("Protect upcoming large transfers against currency\nvolatility by locking in today's rate.") + "\n")
	return b.String()
}
