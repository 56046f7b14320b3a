package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zerah-labs/zerah/internal/app"
	"github.com/zerah-labs/zerah/internal/ui"
)

func NewUICmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the full-screen app",
		Long: `Open the full-screen terminal app with the dashboard, wallets,
send, cards and engine screens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(application)
		},
	}
}

func runUI(application *app.App) error {
	deps := ui.Deps{
		Cfg:   application.Cfg,
		Svc:   application.Service,
		Rates: application.Rates,
		Log:   application.Log,
	}

	program := tea.NewProgram(ui.NewApp(deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run app: %w", err)
	}
	return nil
}
