package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/chesswager-cli/internal/adapters/render/dashboard"
	"github.com/bnema/chesswager-cli/internal/application"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	var currency string
	var limit int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show balances, Lichess link, notifications and open bets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := selectCurrency(s.App, currency); err != nil {
				return err
			}

			var overview application.Overview
			load := func(ctx context.Context) error {
				var err error
				if overview, err = s.Overview(ctx); err != nil {
					return err
				}

				history, err := s.Bets.History(ctx)
				if err != nil {
					app.logger.Warn().Err(err).Msg("bet history unavailable for dashboard")
					return nil
				}
				for _, bet := range history {
					if bet.Open() {
						overview.OpenBets = append(overview.OpenBets, bet)
					}
				}
				return nil
			}
			if err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading dashboard...", load); err != nil {
				return userError(err)
			}

			rendered, err := dashboard.Overview(overview, dashboard.RenderOptions{Now: app.clock.Now(), Limit: limit})
			if err != nil {
				return fmt.Errorf("render dashboard: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	addCurrencyFlag(cmd, &currency)
	cmd.Flags().IntVar(&limit, "limit", 5, "Maximum notifications and bets to show (0 shows all)")

	return cmd
}
