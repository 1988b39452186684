package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cw",
		Short:         "ChessWager CLI (cw): wager on your chess games from the terminal",
		Long:          "cw (ChessWager CLI) signs you in to the ChessWager platform, shows balances and notifications, places and settles bets, links your Lichess account and streams live events.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(app),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newBalanceCmd(app),
		newNotificationsCmd(app),
		newBetsCmd(app),
		newLichessCmd(app),
		newAdminCmd(app),
		newDashboardCmd(app),
		newWatchCmd(app),
	)

	return rootCmd
}
