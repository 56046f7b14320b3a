package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zerah-labs/zerah/internal/app"
	"github.com/zerah-labs/zerah/internal/ui/views"
	"github.com/zerah-labs/zerah/internal/utils"
)

func NewWalletsCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "wallets",
		Short: "List wallets and balances",
		Example: `  # List every wallet with its balance
  zerah wallets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wallets := application.Service.Wallet.Wallets()

			items := make([]views.WalletListItem, 0, len(wallets))
			for _, w := range wallets {
				bank := "-"
				if w.BankAccount != nil {
					bank = w.BankAccount.Institution
				}
				items = append(items, views.WalletListItem{
					Currency: w.Currency,
					Label:    w.Label,
					Balance:  utils.FormatAmount(w.Symbol, w.Balance),
					Bank:     bank,
				})
			}

			total := utils.FormatAmount("$", application.Service.Wallet.EstimatedTotalUSD())
			return views.NewWalletListView().Render(items, total)
		},
	}
}
