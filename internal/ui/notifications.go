package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zerah-labs/zerah/internal/model"
)

// notificationsScreen is the inbox: the notification list with unread
// markers and a mark-all-read action.
type notificationsScreen struct {
	deps  Deps
	items []model.Notification
}

func newNotificationsScreen(deps Deps) *notificationsScreen {
	return &notificationsScreen{
		deps:  deps,
		items: deps.Svc.Wallet.Notifications(),
	}
}

func (s *notificationsScreen) Init() tea.Cmd {
	return nil
}

func (s *notificationsScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, goHome()
		case "m":
			s.deps.Svc.Wallet.MarkAllNotificationsRead()
			s.items = s.deps.Svc.Wallet.Notifications()
		}
	}
	return s, nil
}

func (s *notificationsScreen) View() string {
	unread := s.deps.Svc.Wallet.UnreadCount()

	var b strings.Builder
	header := "Notifications"
	if unread > 0 {
		header = fmt.Sprintf("Notifications (%d unread)", unread)
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")

	if len(s.items) == 0 {
		b.WriteString(subtitleStyle.Render("You're all caught up.") + "\n")
	}
	for _, n := range s.items {
		marker := "  "
		title := n.Title
		if !n.Read {
			marker = selectedStyle.Render("● ")
			title = titleStyle.Render(n.Title)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", marker, title,
			subtitleStyle.Render(n.Time)))
		b.WriteString("  " + subtitleStyle.Render(n.Body) + "\n\n")
	}

	help := "esc back"
	if unread > 0 {
		help = "m mark all read • esc back"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}
