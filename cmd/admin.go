package cmd

import (
	"fmt"

	"github.com/bnema/chesswager-cli/internal/adapters/render/dashboard"
	"github.com/bnema/chesswager-cli/internal/application"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Platform administration (admin role only)",
	}

	cmd.AddCommand(
		newAdminDashboardCmd(app),
		newAdminMintCmd(app),
		newAdminTransferCmd(app),
		newAdminBalanceCmd(app),
	)

	return cmd
}

func newAdminDashboardCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			stats, err := s.Admin.Dashboard(cmd.Context())
			if err != nil {
				return userError(err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}

			rendered, err := dashboard.AdminDashboard(stats)
			if err != nil {
				return fmt.Errorf("render admin dashboard: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAdminMintCmd(app *app) *cobra.Command {
	var address string
	var amount float64

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint tokens to an address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Admin.Mint(cmd.Context(), application.MintCommand{Address: address, Amount: amount}); err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Minted %s tokens to %s\n", dashboard.FormatAmount(amount), address)
			return err
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Recipient address")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Tokens to mint")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newAdminTransferCmd(app *app) *cobra.Command {
	var to string
	var amount float64

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer tokens from the treasury",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Admin.Transfer(cmd.Context(), application.TransferCommand{To: to, Amount: amount}); err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Transferred %s tokens to %s\n", dashboard.FormatAmount(amount), to)
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient address")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Tokens to transfer")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newAdminBalanceCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show the token balance of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			balance, err := s.Admin.BalanceOf(cmd.Context(), args[0])
			if err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s tokens\n", args[0], dashboard.FormatAmount(balance))
			return err
		},
	}
}
