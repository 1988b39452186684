package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/chesswager-cli/internal/adapters/render/dashboard"
	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "List and acknowledge notifications",
	}

	cmd.AddCommand(
		newNotificationsListCmd(app),
		newNotificationsReadCmd(app),
		newNotificationsReadAllCmd(app),
	)

	return cmd
}

type notificationOutput struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type notificationsOutput struct {
	Unread        int                  `json:"unread"`
	Notifications []notificationOutput `json:"notifications"`
}

func newNotificationsListCmd(app *app) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			refresh := func(ctx context.Context) error { return s.Notifications.Refresh(ctx) }
			if asJSON {
				err = refresh(cmd.Context())
			} else {
				err = runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching notifications...", refresh)
			}
			if err != nil {
				return userError(err)
			}

			snapshot := s.Notifications.Snapshot()
			if asJSON {
				out := notificationsOutput{Unread: snapshot.Unread, Notifications: make([]notificationOutput, 0, len(snapshot.Notifications))}
				for _, n := range snapshot.Notifications {
					out.Notifications = append(out.Notifications, notificationOutput{
						ID:        string(n.ID),
						Message:   n.Message,
						Read:      n.Read,
						CreatedAt: n.CreatedAt,
					})
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			rendered, err := dashboard.Notifications(snapshot.Notifications, snapshot.Unread, dashboard.RenderOptions{Now: app.clock.Now(), Limit: limit})
			if err != nil {
				return fmt.Errorf("render notifications: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum notifications to show (0 shows all)")

	return cmd
}

func newNotificationsReadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Notifications.WaitReady(cmd.Context()); err != nil {
				return err
			}
			if err := s.Notifications.MarkAsRead(cmd.Context(), domain.NotificationID(args[0])); err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as read (%d unread)\n", args[0], s.Notifications.Snapshot().Unread)
			return err
		},
	}
}

func newNotificationsReadAllCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSignedIn(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Notifications.WaitReady(cmd.Context()); err != nil {
				return err
			}
			if err := s.Notifications.MarkAllAsRead(cmd.Context()); err != nil {
				return userError(err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Marked all notifications as read")
			return err
		},
	}
}
