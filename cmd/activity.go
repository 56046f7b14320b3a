package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zerah-labs/zerah/internal/app"
	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/ui/views"
	"github.com/zerah-labs/zerah/internal/utils"
)

func NewActivityCmd(application *app.App) *cobra.Command {
	var (
		currency string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List recent transactions",
		Example: `  # List recent activity
  zerah activity

  # Only EUR entries, at most 5
  zerah activity --currency EUR --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var transactions []model.Transaction
			if currency != "" {
				transactions = application.Store.TransactionsByCurrency(currency, limit)
			} else {
				transactions = application.Service.Wallet.RecentActivity()
				if limit > 0 && len(transactions) > limit {
					transactions = transactions[:limit]
				}
			}

			items := make([]views.ActivityListItem, 0, len(transactions))
			for _, tx := range transactions {
				status := tx.Status
				if status == "" {
					status = model.StatusCompleted
				}
				items = append(items, views.ActivityListItem{
					Name:     tx.Name,
					Date:     tx.Date,
					Type:     string(tx.Type),
					Amount:   utils.FormatAmount("", tx.Amount),
					Currency: tx.Currency,
					Status:   string(status),
				})
			}

			return views.NewActivityListView().Render(items, limit)
		},
	}

	cmd.Flags().StringVarP(&currency, "currency", "C", "", "Filter activity by currency code")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of entries to display")
	return cmd
}
