package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/chesswager-cli/internal/adapters/render/dashboard"
	"github.com/bnema/chesswager-cli/internal/application"
	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/spf13/cobra"
)

type balanceOutput struct {
	Tokens      float64  `json:"tokens"`
	Sweepstakes float64  `json:"sweepstakes"`
	Selected    string   `json:"selected"`
	Wallet      *float64 `json:"wallet,omitempty"`
}

func newBalanceCmd(app *app) *cobra.Command {
	var asJSON bool
	var currency string
	var wallet bool

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show token and sweepstakes balances",
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

			var walletTokens float64
			refresh := func(ctx context.Context) error {
				if err := s.Balances.Refresh(ctx); err != nil {
					return err
				}
				if !wallet {
					return nil
				}
				tokens, err := s.Balances.WalletTokens(ctx)
				walletTokens = tokens
				return err
			}
			if asJSON {
				err = refresh(cmd.Context())
			} else {
				err = runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching balances...", refresh)
			}
			if err != nil {
				return userError(err)
			}

			balances := s.Balances.Snapshot().Balances
			selected := s.Currency.Selected()
			if asJSON {
				out := balanceOutput{
					Tokens:      balances.Tokens,
					Sweepstakes: balances.Sweepstakes,
					Selected:    string(selected),
				}
				if wallet {
					out.Wallet = &walletTokens
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			for _, c := range []domain.Currency{domain.CurrencyTokens, domain.CurrencySweepstakes} {
				marker := " "
				if c == selected {
					marker = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %s\n", marker, c.Label()+":", dashboard.FormatAmount(balances.Of(c))); err != nil {
					return err
				}
			}
			if wallet {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s\n", "Wallet:", dashboard.FormatAmount(walletTokens)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&wallet, "wallet", false, "Also show the on-ledger token wallet balance")
	addCurrencyFlag(cmd, &currency)

	return cmd
}

func addCurrencyFlag(cmd *cobra.Command, currency *string) {
	cmd.Flags().StringVar(currency, "currency", "", "Currency to use: tokens or sweepstakes (default from wager.default_currency)")
}

func selectCurrency(core *application.App, raw string) error {
	if raw == "" {
		return nil
	}
	_, err := core.Currency.Select(raw)
	return err
}
