package views

import (
	"github.com/pterm/pterm"
)

type CardListItem struct {
	LastFour string
	Tier     string
	Currency string
	Holder   string
	Expiry   string
	Status   string
}

type CardListView struct{}

func NewCardListView() *CardListView {
	return &CardListView{}
}

func (v *CardListView) Render(items []CardListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No cards found")
		return nil
	}

	pterm.DefaultSection.Println("Virtual cards")

	tableData := pterm.TableData{
		{"Card", "Tier", "Currency", "Holder", "Expiry", "Status"},
	}

	for _, item := range items {
		var coloredTier string
		switch item.Tier {
		case "Gold":
			coloredTier = pterm.Yellow(item.Tier)
		case "Black":
			coloredTier = pterm.Gray(item.Tier)
		default:
			coloredTier = pterm.Cyan(item.Tier)
		}

		status := pterm.Green(item.Status)
		if item.Status == "Frozen" {
			status = pterm.Red(item.Status)
		}

		tableData = append(tableData, []string{
			"•••• " + item.LastFour,
			coloredTier,
			item.Currency,
			item.Holder,
			item.Expiry,
			status,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d cards\n", len(items))
	return nil
}
