package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zerah-labs/zerah/internal/constants"
	"github.com/zerah-labs/zerah/internal/model"
)

// copiedExpireMsg clears the transient copied indicator.
type copiedExpireMsg struct {
	seq int64
}

// receiveScreen shows a wallet's receiving bank details with copy
// affordances on the copyable lines.
type receiveScreen struct {
	deps   Deps
	wallet model.Wallet

	copyable []int
	idx      int

	copiedLabel string
	copiedSeq   int64
}

// newReceiveScreen falls back to the first wallet when the shell has no
// active one.
func newReceiveScreen(deps Deps, active *model.Wallet) *receiveScreen {
	var w model.Wallet
	if active != nil {
		w = *active
	} else if wallets := deps.Svc.Wallet.Wallets(); len(wallets) > 0 {
		w = wallets[0]
	}

	s := &receiveScreen{deps: deps, wallet: w}
	if w.BankAccount != nil {
		for i, d := range w.BankAccount.Details {
			if d.Copyable {
				s.copyable = append(s.copyable, i)
			}
		}
	}
	return s
}

func (s *receiveScreen) Init() tea.Cmd {
	return nil
}

func (s *receiveScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedExpireMsg:
		if msg.seq == s.copiedSeq {
			s.copiedLabel = ""
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, goHome()
		case "c", "enter":
			return s, s.copySelected()
		case "up", "k":
			if s.idx > 0 {
				s.idx--
			}
		case "down", "j":
			if s.idx < len(s.copyable)-1 {
				s.idx++
			}
		}
	}
	return s, nil
}

func (s *receiveScreen) copySelected() tea.Cmd {
	if s.wallet.BankAccount == nil || len(s.copyable) == 0 {
		return nil
	}

	detail := s.wallet.BankAccount.Details[s.copyable[s.idx]]
	if !copyText(detail.Value) {
		s.deps.Log.Warn().Str("label", detail.Label).Msg("clipboard copy failed")
		return nil
	}

	s.copiedLabel = detail.Label
	s.copiedSeq++
	seq := s.copiedSeq
	return tea.Tick(constants.StatusBannerDelay, func(time.Time) tea.Msg {
		return copiedExpireMsg{seq: seq}
	})
}

func (s *receiveScreen) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Receive "+s.wallet.Currency) + "\n")
	b.WriteString(subtitleStyle.Render("Share these details to get paid into your "+
		s.wallet.Label+".") + "\n\n")

	acct := s.wallet.BankAccount
	if acct == nil {
		b.WriteString(subtitleStyle.Render("No receiving details for this wallet yet.") + "\n\n")
		b.WriteString(helpStyle.Render("esc back"))
		return b.String()
	}

	b.WriteString(labelStyle.Render(strings.ToUpper(acct.Institution)) + "\n")
	b.WriteString(acct.AccountName + "\n\n")

	copyPos := 0
	var lines []string
	for _, d := range acct.Details {
		marker := "  "
		if d.Copyable {
			if copyPos == s.idx {
				marker = selectedStyle.Render("> ")
			}
			copyPos++
		}
		line := fmt.Sprintf("%s%-18s %s", marker, labelStyle.Render(d.Label), d.Value)
		if d.Copyable && d.Label == s.copiedLabel {
			line += "  " + bannerStyle.Render("Copied!")
		}
		lines = append(lines, line)
	}
	b.WriteString(panelStyle.Render(strings.Join(lines, "\n")) + "\n\n")

	b.WriteString(helpStyle.Render("↑/↓ select • c/enter copy • esc back"))
	return b.String()
}
