package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zerah-labs/zerah/internal/model"
)

// transactionDetailsScreen is the read-only receipt for one activity
// entry. A missing transaction pointer falls back to Home on the next
// key press.
type transactionDetailsScreen struct {
	deps Deps
	tx   *model.Transaction
}

func newTransactionDetailsScreen(deps Deps, tx *model.Transaction) *transactionDetailsScreen {
	return &transactionDetailsScreen{deps: deps, tx: tx}
}

func (s *transactionDetailsScreen) Init() tea.Cmd {
	return nil
}

func (s *transactionDetailsScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter":
			return s, goHome()
		}
	}
	return s, nil
}

func (s *transactionDetailsScreen) View() string {
	tx := s.tx
	if tx == nil {
		return subtitleStyle.Render("Transaction not found.") + "\n\n" +
			helpStyle.Render("esc back")
	}

	symbol := currencySymbol(s.deps.Svc.Wallet.Wallets(), tx.Currency)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Transaction Details") + "\n\n")
	b.WriteString(amountColor(tx.Type == model.TypeIncome).Render(signedAmount(symbol, *tx)) + "\n")
	b.WriteString(tx.Name + "\n\n")

	status := tx.Status
	if status == "" {
		status = model.StatusCompleted
	}
	ref := tx.Reference
	if ref == "" {
		ref = tx.ID
	}

	details := fmt.Sprintf(
		"Status      %s\nDate        %s\nCurrency    %s\nReference   %s",
		string(status), tx.Date, tx.Currency, ref,
	)
	b.WriteString(panelStyle.Render(details) + "\n\n")
	b.WriteString(helpStyle.Render("esc back"))
	return b.String()
}
