package views

import (
	"github.com/pterm/pterm"
)

type WalletListItem struct {
	Currency string
	Label    string
	Balance  string
	Bank     string
}

type WalletListView struct{}

func NewWalletListView() *WalletListView {
	return &WalletListView{}
}

func (v *WalletListView) Render(items []WalletListItem, totalUSD string) error {
	if len(items) == 0 {
		pterm.Warning.Println("No wallets found")
		return nil
	}

	pterm.DefaultSection.Println("Wallets")

	tableData := pterm.TableData{
		{"Currency", "Label", "Balance", "Bank"},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			pterm.Cyan(item.Currency),
			item.Label,
			pterm.Green(item.Balance),
			item.Bank,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Estimated total: %s\n", totalUSD)
	return nil
}
