package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/chesswager-cli/internal/adapters/lichess"
	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLichessCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lichess",
		Short: "Link or unlink your Lichess account",
	}

	cmd.AddCommand(newLichessStatusCmd(app), newLichessConnectCmd(app), newLichessDisconnectCmd(app))

	return cmd
}

type lichessOutput struct {
	Connected bool   `json:"connected"`
	Username  string `json:"username,omitempty"`
}

func newLichessStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a Lichess account is linked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.ChessLink.WaitReady(cmd.Context()); err != nil {
				return userError(err)
			}

			status := s.ChessLink.Snapshot().Status
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), lichessOutput{Connected: status.Connected, Username: status.Username()})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), lichessStatusText(status))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newLichessConnectCmd(app *app) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Link a Lichess account through the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			state := lichess.NewState()
			server, err := lichess.StartCallbackServer(listenAddr, state)
			if err != nil {
				return fmt.Errorf("start callback server: %w", err)
			}
			defer func() { _ = server.Close() }()

			connectURL, err := s.ChessLink.ConnectURL(server.RedirectURI(), state)
			if err != nil {
				return userError(err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to link your Lichess account:\n%s\n", connectURL)

			wait := func(ctx context.Context) error {
				if err := server.Wait(ctx, app.cfg.Lichess.Timeout); err != nil {
					return fmt.Errorf("wait for lichess callback: %w", err)
				}
				return s.ChessLink.Refresh(ctx)
			}
			if err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Waiting for Lichess...", wait); err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), lichessStatusText(s.ChessLink.Snapshot().Status))
			return err
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", app.cfg.Lichess.ListenAddr, "Local address for the OAuth callback")

	return cmd
}

func newLichessDisconnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Unlink the Lichess account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.ChessLink.Disconnect(cmd.Context()); err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Lichess account disconnected")
			return err
		},
	}
}

func lichessStatusText(status domain.ChessLinkStatus) string {
	if !status.Connected {
		return "Lichess: not connected"
	}
	if name := status.Username(); name != "" {
		return "Lichess: connected as " + name
	}
	return "Lichess: connected"
}
