package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/utils"
)

// homeScreen is the dashboard: estimated total balance, the wallet
// carousel, quick actions and the recent activity feed.
type homeScreen struct {
	deps Deps

	wallets   []model.Wallet
	walletIdx int

	activity []model.Transaction
	txIdx    int
}

func newHomeScreen(deps Deps) *homeScreen {
	return &homeScreen{
		deps:     deps,
		wallets:  deps.Svc.Wallet.Wallets(),
		activity: deps.Svc.Wallet.RecentActivity(),
	}
}

func (s *homeScreen) Init() tea.Cmd {
	return nil
}

func (s *homeScreen) selectedWallet() *model.Wallet {
	if len(s.wallets) == 0 {
		return nil
	}
	w := s.wallets[s.walletIdx]
	return &w
}

func (s *homeScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "left", "h":
		if len(s.wallets) > 0 {
			s.walletIdx = (s.walletIdx - 1 + len(s.wallets)) % len(s.wallets)
		}
	case "right", "l":
		if len(s.wallets) > 0 {
			s.walletIdx = (s.walletIdx + 1) % len(s.wallets)
		}
	case "up", "k":
		if s.txIdx > 0 {
			s.txIdx--
		}
	case "down", "j":
		if s.txIdx < len(s.activity)-1 {
			s.txIdx++
		}
	case "enter":
		if s.txIdx < len(s.activity) {
			return s, goToTransactionDetails(s.activity[s.txIdx])
		}
	case "c":
		return s, goTo(ViewConvert)
	case "s":
		return s, goToSend(s.selectedWallet())
	case "r":
		if w := s.selectedWallet(); w != nil {
			return s, goToReceive(*w)
		}
	case "p":
		return s, goTo(ViewProfile)
	case "n":
		return s, goTo(ViewNotifications)
	}
	return s, nil
}

func (s *homeScreen) View() string {
	var b strings.Builder

	unread := s.deps.Svc.Wallet.UnreadCount()
	bell := "n inbox"
	if unread > 0 {
		bell = fmt.Sprintf("n inbox (%d)", unread)
	}
	b.WriteString(titleStyle.Render("Welcome back, "+firstName(s.deps.Cfg.Profile.Name)) + "  " +
		helpStyle.Render("p profile • "+bell) + "\n\n")

	total := s.deps.Svc.Wallet.EstimatedTotalUSD()
	b.WriteString(labelStyle.Render("TOTAL BALANCE (EST.)") + "\n")
	b.WriteString(amountStyle.Render(utils.FormatAmount("$", total)) + "\n\n")

	b.WriteString(s.walletCarousel() + "\n")
	b.WriteString(helpStyle.Render("c convert • s send • r receive") + "\n\n")

	b.WriteString(labelStyle.Render("RECENT ACTIVITY") + "\n")
	b.WriteString(s.activityList())
	return b.String()
}

func (s *homeScreen) walletCarousel() string {
	if len(s.wallets) == 0 {
		return subtitleStyle.Render("No wallets yet.") + "\n"
	}

	var cards []string
	for i, w := range s.wallets {
		body := fmt.Sprintf("%s %s\n%s", w.Currency, w.Label, utils.FormatAmount(w.Symbol, w.Balance))
		if i == s.walletIdx {
			cards = append(cards, cardStyle.Render(body))
		} else {
			cards = append(cards, cardStyle.BorderForeground(colorMuted).Render(body))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (s *homeScreen) activityList() string {
	if len(s.activity) == 0 {
		return subtitleStyle.Render("No transactions yet.")
	}

	var b strings.Builder
	for i, tx := range s.activity {
		cursor := "  "
		if i == s.txIdx {
			cursor = selectedStyle.Render("> ")
		}

		symbol := currencySymbol(s.wallets, tx.Currency)
		amount := amountColor(tx.Type == model.TypeIncome).Render(signedAmount(symbol, tx))
		b.WriteString(fmt.Sprintf("%s%-24s %s  %s\n",
			cursor, tx.Name, subtitleStyle.Render(tx.Date), amount))
	}
	return b.String()
}

// signedAmount formats a transaction amount with its explicit sign, the
// way the activity feed shows it.
func signedAmount(symbol string, tx model.Transaction) string {
	if tx.Type == model.TypeIncome {
		return "+" + utils.FormatAmount(symbol, tx.Amount)
	}
	return utils.FormatAmount(symbol, tx.Amount)
}

// currencySymbol resolves a display symbol from the wallet collection,
// falling back to the bare code.
func currencySymbol(wallets []model.Wallet, currency string) string {
	for _, w := range wallets {
		if w.Currency == currency {
			return w.Symbol
		}
	}
	for _, opt := range model.ConvertCurrencies() {
		if opt.Code == currency {
			return opt.Symbol
		}
	}
	return currency + " "
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
