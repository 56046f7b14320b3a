package views

import (
	"github.com/pterm/pterm"
)

type ActivityListItem struct {
	Name     string
	Date     string
	Type     string
	Amount   string
	Currency string
	Status   string
}

type ActivityListView struct{}

func NewActivityListView() *ActivityListView {
	return &ActivityListView{}
}

func (v *ActivityListView) Render(items []ActivityListItem, limit int) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent activity (limit: %d)", limit)

	tableData := pterm.TableData{
		{"Name", "Date", "Type", "Amount", "Currency", "Status"},
	}

	for _, item := range items {
		var coloredType, coloredAmount string

		switch item.Type {
		case "expense":
			coloredType = pterm.Red(item.Type)
			coloredAmount = pterm.Red(item.Amount)
		case "income":
			coloredType = pterm.Green(item.Type)
			coloredAmount = pterm.Green(item.Amount)
		default:
			coloredType = item.Type
			coloredAmount = item.Amount
		}

		tableData = append(tableData, []string{
			item.Name,
			item.Date,
			coloredType,
			coloredAmount,
			item.Currency,
			item.Status,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}
