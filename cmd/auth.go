package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/chesswager-cli/internal/application"
	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := resolvePassword(cmd.InOrStdin(), password)
			if err != nil {
				return err
			}

			s, err := app.start(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			current, err := s.Auth.Register(cmd.Context(), application.RegisterCommand{
				Username: username,
				Email:    email,
				Password: resolved,
			})
			if err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered and signed in as %s\n", displayName(current.Claims))
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := resolvePassword(cmd.InOrStdin(), password)
			if err != nil {
				return err
			}

			s, err := app.start(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			current, err := s.Auth.Login(cmd.Context(), application.LoginCommand{Email: email, Password: resolved})
			if err != nil {
				if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrMalformedCredential) {
					return fmt.Errorf("server issued an unusable session (%w), please log in again", err)
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", displayName(current.Claims))
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.start(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Auth.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}
}

type whoamiOutput struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expiresAt"`
	Lichess   string `json:"lichess,omitempty"`
}

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			current, _ := s.Sessions.Current()
			out := whoamiOutput{
				UserID:    current.Claims.UserID,
				Username:  current.Claims.Username,
				Email:     current.Claims.Email,
				Role:      string(current.Claims.Role),
				ExpiresAt: current.Claims.ExpiresAt.Format(time.RFC3339),
			}

			profile, err := s.Auth.Profile(cmd.Context())
			if err != nil {
				app.logger.Debug().Err(err).Msg("profile unavailable, showing token claims")
			} else {
				out.Lichess = profile.LichessUsername
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s (%s)\n", displayName(current.Claims), out.Role)
			if out.Email != "" {
				_, _ = fmt.Fprintf(w, "email: %s\n", out.Email)
			}
			if out.Lichess != "" {
				_, _ = fmt.Fprintf(w, "lichess: %s\n", out.Lichess)
			}
			_, err = fmt.Fprintf(w, "session expires: %s\n", out.ExpiresAt)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func resolvePassword(in io.Reader, password string) (string, error) {
	if password != "" {
		return password, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("password is required: pass --password or pipe it on stdin")
	}

	return line, nil
}

func displayName(claims domain.Claims) string {
	for _, candidate := range []string{claims.Username, claims.Email, claims.UserID} {
		if name := strings.TrimSpace(candidate); name != "" {
			return name
		}
	}
	return "unknown user"
}
