package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/chesswager-cli/internal/adapters/render/dashboard"
	"github.com/bnema/chesswager-cli/internal/application"
	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBetsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bets",
		Aliases: []string{"bet"},
		Short:   "Place, accept and review wagers",
	}

	cmd.AddCommand(
		newBetsPlaceCmd(app),
		newBetsSettleCmd(app, "accept", "Accept an open bet", func(s *session) betAction { return s.Bets.Accept }),
		newBetsSettleCmd(app, "cancel", "Cancel one of your pending bets", func(s *session) betAction { return s.Bets.Cancel }),
		newBetsListCmd(app, "history", "Your bets, newest first", "Bet history", func(s *session) betLister { return s.Bets.History }),
		newBetsListCmd(app, "available", "Open bets you can accept", "Available bets", func(s *session) betLister { return s.Bets.Available }),
	)

	return cmd
}

type betAction func(context.Context, domain.BetID) (domain.Bet, error)

type betLister func(context.Context) ([]domain.Bet, error)

type betOutput struct {
	ID          string    `json:"id"`
	Creator     string    `json:"creator,omitempty"`
	Opponent    string    `json:"opponent,omitempty"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	TimeControl string    `json:"timeControl,omitempty"`
	Color       string    `json:"colorPreference,omitempty"`
	Winner      string    `json:"winner,omitempty"`
	GameURL     string    `json:"gameUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toBetOutput(bet domain.Bet) betOutput {
	return betOutput{
		ID:          string(bet.ID),
		Creator:     bet.Creator,
		Opponent:    bet.Opponent,
		Amount:      bet.Amount,
		Currency:    string(bet.Currency),
		Status:      string(bet.Status),
		TimeControl: bet.TimeControl,
		Color:       string(bet.Color),
		Winner:      bet.Winner,
		GameURL:     bet.GameURL,
		CreatedAt:   bet.CreatedAt,
	}
}

func newBetsPlaceCmd(app *app) *cobra.Command {
	var amount float64
	var currency, timeControl, color, opponent string

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place a new bet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			place := application.PlaceBetCommand{
				Amount:          amount,
				TimeControl:     timeControl,
				ColorPreference: domain.ColorPreference(color),
				OpponentID:      opponent,
			}
			if currency != "" {
				parsed, err := domain.ParseCurrency(currency)
				if err != nil {
					return err
				}
				place.Currency = parsed
			}

			bet, err := s.Bets.Place(cmd.Context(), place)
			if err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Placed bet %s: %s %s (%s)\n", bet.ID, dashboard.FormatAmount(bet.Amount), bet.Currency.Label(), bet.Status)
			return err
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Stake to wager")
	addCurrencyFlag(cmd, &currency)
	cmd.Flags().StringVar(&timeControl, "time-control", "5+0", "Time control, minutes+increment")
	cmd.Flags().StringVar(&color, "color", string(domain.ColorRandom), "Color preference: white, black or random")
	cmd.Flags().StringVar(&opponent, "opponent", "", "Challenge a specific user id (default: open seek)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newBetsSettleCmd(app *app, use, short string, action func(*session) betAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			bet, err := action(s)(cmd.Context(), domain.BetID(args[0]))
			if err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Bet %s is now %s\n", bet.ID, bet.Status)
			return err
		},
	}
}

func newBetsListCmd(app *app, use, short, title string, list func(*session) betLister) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			var bets []domain.Bet
			fetch := func(ctx context.Context) error {
				var err error
				bets, err = list(s)(ctx)
				return err
			}
			if asJSON {
				err = fetch(cmd.Context())
			} else {
				err = runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching bets...", fetch)
			}
			if err != nil {
				return userError(err)
			}

			if asJSON {
				out := make([]betOutput, 0, len(bets))
				for _, bet := range bets {
					out = append(out, toBetOutput(bet))
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			rendered, err := dashboard.Bets(title, bets, dashboard.RenderOptions{Now: app.clock.Now(), Limit: limit})
			if err != nil {
				return fmt.Errorf("render bets: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum bets to show (0 shows all)")

	return cmd
}
