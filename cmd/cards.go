package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zerah-labs/zerah/internal/app"
	"github.com/zerah-labs/zerah/internal/ui/views"
)

func NewCardsCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "List virtual cards",
		Example: `  # List every virtual card in the session
  zerah cards`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cards := application.Service.Card.Cards()

			items := make([]views.CardListItem, 0, len(cards))
			for _, c := range cards {
				status := "Active"
				if c.Frozen {
					status = "Frozen"
				}
				items = append(items, views.CardListItem{
					LastFour: c.LastFour,
					Tier:     string(c.Tier),
					Currency: c.Currency,
					Holder:   c.Holder,
					Expiry:   c.Expiry,
					Status:   status,
				})
			}

			return views.NewCardListView().Render(items)
		},
	}
}
