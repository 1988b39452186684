package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/chesswager-cli/internal/adapters/realtime"
	"github.com/bnema/chesswager-cli/internal/application"
	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const (
	watchBacklog           = 64
	metricsShutdownTimeout = 2 * time.Second
)

func newWatchCmd(app *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream live notifications and bet events until interrupted or the session ends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, app, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve prometheus metrics on this address, e.g. 127.0.0.1:9464")

	return cmd
}

func runWatch(cmd *cobra.Command, app *app, metricsAddr string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	lines := make(chan string, watchBacklog)
	emit := func(format string, args ...any) {
		select {
		case lines <- fmt.Sprintf(format, args...):
		default:
			app.logger.Warn().Msg("watch output backlog full, dropping line")
		}
	}

	metrics := &realtime.Metrics{}
	if metricsAddr != "" {
		registry := prometheus.NewRegistry()
		metrics.Register(registry)

		stop, addr, err := serveMetrics(metricsAddr, registry)
		if err != nil {
			return err
		}
		defer stop()
		emit("metrics on http://%s/metrics", addr)
	}

	s, err := app.startSignedIn(ctx, &liveOptions{
		metrics: metrics,
		onLifecycle: func(l realtime.Lifecycle) {
			emit("%s", lifecycleText(l))
		},
	})
	if err != nil {
		return err
	}
	defer s.Close()

	var ended error
	var endedMu sync.Mutex
	releaseSession := s.Sessions.Watch(func(state application.SessionState) {
		if !state.Anonymous() {
			return
		}
		endedMu.Lock()
		ended = state.Reason
		endedMu.Unlock()
		cancel()
	})
	defer releaseSession()

	releaseNotifications := s.Notifications.OnNotification(func(n domain.Notification) {
		emit("notification %s: %s", n.ID, n.Message)
	})
	defer releaseNotifications()

	releaseBets := watchBetAccepted(s.Channel, emit)
	defer releaseBets()

	if err := s.WaitReady(ctx); err == nil {
		snapshot := s.Notifications.Snapshot()
		emit("watching as %s, %d unread", s.Sessions.State().Session.Claims.Username, snapshot.Unread)
	}

	w := cmd.OutOrStdout()
	for {
		select {
		case line := <-lines:
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		case <-ctx.Done():
			drain(lines, func(line string) { _, _ = fmt.Fprintln(w, line) })

			endedMu.Lock()
			reason := ended
			endedMu.Unlock()
			if errors.Is(reason, domain.ErrSessionExpired) {
				return fmt.Errorf("session expired: %w", errPleaseLogIn)
			}
			if reason != nil {
				return userError(reason)
			}
			return nil
		}
	}
}

// watchBetAccepted follows the channel so every new connection gets the handler.
func watchBetAccepted(channel *application.RealtimeChannel, emit func(string, ...any)) func() {
	var mu sync.Mutex
	var sub ports.Subscription

	release := channel.WatchConnection(func(state application.ConnectionState) {
		mu.Lock()
		defer mu.Unlock()
		if sub != nil {
			sub.Unsubscribe()
			sub = nil
		}
		if state.Conn == nil {
			return
		}
		sub = state.Conn.On(ports.EventBetAccepted, func(payload json.RawMessage) {
			emit("bet accepted: %s", string(payload))
		})
	})

	return func() {
		release()
		mu.Lock()
		defer mu.Unlock()
		if sub != nil {
			sub.Unsubscribe()
		}
	}
}

func lifecycleText(l realtime.Lifecycle) string {
	switch l.Event {
	case realtime.EventConnect:
		return "realtime connected"
	case realtime.EventReconnectAttempt:
		return fmt.Sprintf("realtime reconnecting (attempt %d)", l.Attempt)
	case realtime.EventReconnectFailed:
		return "realtime gave up reconnecting"
	}
	if l.Err != nil {
		return fmt.Sprintf("realtime %s: %v", l.Event, l.Err)
	}
	return "realtime " + l.Event
}

func serveMetrics(addr string, registry *prometheus.Registry) (func(), string, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", fmt.Errorf("listen for metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		_ = server.Serve(listener)
	}()

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
	return stop, listener.Addr().String(), nil
}

func drain(lines <-chan string, write func(string)) {
	for {
		select {
		case line := <-lines:
			write(line)
		default:
			return
		}
	}
}
