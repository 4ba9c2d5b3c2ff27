package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkivimagi/auctionview/internal/auction"
	"github.com/mkivimagi/auctionview/internal/logging"
	"github.com/mkivimagi/auctionview/internal/tui"
)

// newBrowseCmd creates the interactive table browser command.
func newBrowseCmd() *cobra.Command {
	var (
		startPage int
		editRoute string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse auction results interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsTTY() {
				return fmt.Errorf("browse requires an interactive terminal; use 'auctionview list' instead")
			}

			cfg := getActiveConfig()
			client := auction.NewClient(
				cfg.Endpoint,
				auction.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
			)

			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			actions := tui.Actions[auction.Record]{
				Key: auction.Record.Key,
				OnDelete: func(r auction.Record) {
					// Server-side deletion is out of scope; the confirmed
					// intent is recorded for downstream tooling.
					log.Info().Int64("id", r.ID).Str("auctioneer", r.Auctioneer).Msg("delete requested")
				},
			}
			if editRoute != "" {
				actions.EditRoute = editRoute
				actions.Navigate = func(target string) {
					log.Info().Str("target", target).Msg("edit navigation requested")
				}
			}

			model, err := tui.NewBrowseModel(ctx, client.FetchPage, tui.BrowseConfig{
				Columns:      auctionColumns(),
				Actions:      actions,
				Page:         startPage,
				PageCount:    cfg.TotalPages,
				PageSize:     cfg.PageSize,
				EnableSearch: true,
			})
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&startPage, "page", 1, "1-indexed page to open")
	cmd.Flags().StringVar(&editRoute, "edit-route", "", "route template for edit navigation, e.g. /auctions/edit")

	return cmd
}
