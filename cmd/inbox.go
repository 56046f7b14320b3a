package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zerah-labs/zerah/internal/app"
	"github.com/zerah-labs/zerah/internal/ui/views"
)

func NewInboxCmd(application *app.App) *cobra.Command {
	var markRead bool

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List notifications",
		Example: `  # Show the inbox
  zerah inbox

  # Show the inbox and mark everything read
  zerah inbox --read`,
		RunE: func(cmd *cobra.Command, args []string) error {
			notifications := application.Service.Wallet.Notifications()

			items := make([]views.NotificationListItem, 0, len(notifications))
			for _, n := range notifications {
				items = append(items, views.NotificationListItem{
					Category: string(n.Category),
					Title:    n.Title,
					Body:     n.Body,
					Time:     n.Time,
					Read:     n.Read,
				})
			}

			unread := application.Service.Wallet.UnreadCount()
			if err := views.NewNotificationListView().Render(items, unread); err != nil {
				return err
			}

			if markRead && unread > 0 {
				application.Service.Wallet.MarkAllNotificationsRead()
				pterm.Success.Println("All notifications marked as read")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&markRead, "read", "r", false, "Mark all notifications as read")
	return cmd
}
