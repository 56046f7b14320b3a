package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type profileItem struct {
	label string
	sub   string
}

type profileSection struct {
	title string
	items []profileItem
}

// profileScreen is the static identity and settings surface. Entries
// render only; the session carries no mutable settings beyond the PIN
// in config.
type profileScreen struct {
	deps     Deps
	sections []profileSection
}

func newProfileScreen(deps Deps) *profileScreen {
	return &profileScreen{
		deps: deps,
		sections: []profileSection{
			{"ACCOUNT SETTINGS", []profileItem{
				{"Personal Information", "Update your details"},
				{"Beneficiaries", "Manage saved recipients"},
				{"Statements", "Download financial records"},
			}},
			{"SECURITY & PRIVACY", []profileItem{
				{"Change Security PIN", "Update 4-digit code"},
				{"Biometric Login", "Face ID / Fingerprint"},
				{"Two-Factor Auth", "Add extra protection"},
			}},
			{"PREFERENCES", []profileItem{
				{"Notifications", "Manage alerts & emails"},
				{"Language", "English (US)"},
				{"Help & Support", "Contact our team"},
			}},
		},
	}
}

func (s *profileScreen) Init() tea.Cmd {
	return nil
}

func (s *profileScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter":
			return s, goHome()
		}
	}
	return s, nil
}

func (s *profileScreen) View() string {
	p := s.deps.Cfg.Profile

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name) + "\n")
	b.WriteString(subtitleStyle.Render(p.Email) + "\n")
	b.WriteString(bannerStyle.Render("ENGINE PRO MEMBER") + "\n\n")

	for _, sec := range s.sections {
		b.WriteString(labelStyle.Render(sec.title) + "\n")
		for _, item := range sec.items {
			b.WriteString(fmt.Sprintf("  %-24s %s\n", item.label, subtitleStyle.Render(item.sub)))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("esc back"))
	return b.String()
}
