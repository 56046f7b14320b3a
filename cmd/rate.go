package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zerah-labs/zerah/internal/app"
	"github.com/zerah-labs/zerah/internal/errhandler"
	"github.com/zerah-labs/zerah/internal/ui/prompts"
)

func NewRateCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "rate [from] [to]",
		Short: "Look up a live exchange rate",
		Long: `Look up a live exchange rate through the configured generative
endpoint. Without arguments the pair is picked interactively.`,
		Example: `  # Interactive pair selection
  zerah rate

  # One-shot lookup
  zerah rate NGN USD`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := "", ""
			switch len(args) {
			case 2:
				from = strings.ToUpper(args[0])
				to = strings.ToUpper(args[1])
			case 1:
				from = strings.ToUpper(args[0])
				to = application.Cfg.Defaults.Currency
			default:
				var err error
				from, to, err = prompts.PromptRatePair("NGN", application.Cfg.Defaults.Currency)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}
			}

			spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Fetching %s/%s rate...", from, to))

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			quote, err := application.Rates.Fetch(ctx, from, to)
			if err != nil {
				spinner.Fail("Rate lookup failed")
				return fmt.Errorf("failed to fetch rate: %w", err)
			}
			spinner.Success("Rate received")

			pterm.DefaultSection.Printf("1 %s = %s %s", from, quote.Rate.String(), to)

			if len(quote.Sources) > 0 {
				pterm.Info.Println("Sources:")
				for _, src := range quote.Sources {
					title := src.Title
					if title == "" {
						title = src.URI
					}
					pterm.Printf("  • %s\n", title)
				}
			}
			return nil
		},
	}
}
