package views

import (
	"github.com/pterm/pterm"
)

type NotificationListItem struct {
	Category string
	Title    string
	Body     string
	Time     string
	Read     bool
}

type NotificationListView struct{}

func NewNotificationListView() *NotificationListView {
	return &NotificationListView{}
}

func (v *NotificationListView) Render(items []NotificationListItem, unread int) error {
	if len(items) == 0 {
		pterm.Warning.Println("Inbox is empty")
		return nil
	}

	pterm.DefaultSection.Println("Inbox")

	tableData := pterm.TableData{
		{"", "Category", "Title", "Message", "When"},
	}

	for _, item := range items {
		marker := " "
		title := item.Title
		if !item.Read {
			marker = pterm.Cyan("●")
			title = pterm.Bold.Sprint(item.Title)
		}

		var coloredCategory string
		switch item.Category {
		case "security":
			coloredCategory = pterm.Red(item.Category)
		case "transaction":
			coloredCategory = pterm.Green(item.Category)
		case "engine":
			coloredCategory = pterm.Yellow(item.Category)
		default:
			coloredCategory = item.Category
		}

		tableData = append(tableData, []string{
			marker,
			coloredCategory,
			title,
			item.Body,
			item.Time,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	if unread > 0 {
		pterm.Info.Printf("%d unread\n", unread)
	}
	return nil
}
