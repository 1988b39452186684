package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/logging"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Backend is the full REST surface the application talks to.
type Backend interface {
	ports.AuthAPI
	ports.NotificationAPI
	ports.BalanceAPI
	ports.ChessLinkAPI
	ports.BetAPI
	ports.AdminAPI
}

type Options struct {
	Store      ports.CredentialStore
	Clock      ports.Clock
	Backend    Backend
	Decode     NotificationDecoder
	ConnectURL ConnectURLBuilder
	// Dialer enables the realtime channel; nil leaves the application without live updates.
	Dialer          ports.RealtimeDialer
	DefaultCurrency domain.Currency
	Logger          zerolog.Logger
}

// App is the root provider: it owns the session and every context scoped to it.
type App struct {
	Sessions      *SessionManager
	Channel       *RealtimeChannel
	Notifications *NotificationsContext
	Balances      *BalanceContext
	ChessLink     *ChessLinkContext
	Currency      *CurrencyContext

	Auth  *AuthService
	Bets  *BetService
	Admin *AdminService

	logger zerolog.Logger
}

func NewApp(opts Options) *App {
	sessions := NewSessionManager(opts.Store, opts.Clock, opts.Logger)
	balances := NewBalanceContext(opts.Backend, opts.Logger)
	currency := NewCurrencyContext(opts.DefaultCurrency)

	app := &App{
		Sessions:      sessions,
		Notifications: NewNotificationsContext(opts.Backend, opts.Decode, opts.Logger),
		Balances:      balances,
		ChessLink:     NewChessLinkContext(opts.Backend, opts.ConnectURL, opts.Logger),
		Currency:      currency,
		Auth:          NewAuthService(opts.Backend, sessions),
		Bets:          NewBetService(opts.Backend, sessions, balances, currency, opts.Logger),
		Admin:         NewAdminService(opts.Backend, sessions),
		logger:        logging.Component(opts.Logger, "app"),
	}
	if opts.Dialer != nil {
		app.Channel = NewRealtimeChannel(opts.Dialer, opts.Logger)
	}

	return app
}

// Start attaches every context and restores the persisted session. An expired or
// malformed persisted credential is not an error; the app simply starts anonymous.
func (a *App) Start(ctx context.Context) error {
	a.Currency.Attach(a.Sessions)
	a.Notifications.Attach(a.Sessions, a.Channel)
	a.Balances.Attach(a.Sessions, a.Channel)
	a.ChessLink.Attach(a.Sessions)
	if a.Channel != nil {
		a.Channel.Attach(a.Sessions)
	}

	err := a.Sessions.Restore(ctx)
	if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrMalformedCredential) {
		a.logger.Debug().Err(err).Msg("starting anonymous")
		return nil
	}
	return err
}

// WaitReady blocks until every session-scoped context finished loading.
func (a *App) WaitReady(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return a.Notifications.WaitReady(groupCtx) })
	group.Go(func() error { return a.Balances.WaitReady(groupCtx) })
	group.Go(func() error { return a.ChessLink.WaitReady(groupCtx) })
	return group.Wait()
}

// RefreshAll refetches balances, notifications and the chess link concurrently.
func (a *App) RefreshAll(ctx context.Context) error {
	if _, ok := a.Sessions.Current(); !ok {
		return domain.ErrNotLoggedIn
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return a.Balances.Refresh(groupCtx) })
	group.Go(func() error { return a.Notifications.Refresh(groupCtx) })
	group.Go(func() error { return a.ChessLink.Refresh(groupCtx) })
	if err := group.Wait(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}

func (a *App) Overview(ctx context.Context) (Overview, error) {
	session, ok := a.Sessions.Current()
	if !ok {
		return Overview{}, domain.ErrNotLoggedIn
	}
	if err := a.WaitReady(ctx); err != nil {
		return Overview{}, err
	}

	notifications := a.Notifications.Snapshot()
	return Overview{
		Session:       session,
		Balances:      a.Balances.Snapshot().Balances,
		Currency:      a.Currency.Selected(),
		ChessLink:     a.ChessLink.Snapshot().Status,
		Notifications: notifications.Notifications,
		Unread:        notifications.Unread,
	}, nil
}

// Close releases the connection, every subscription and the expiry timer.
// The persisted credential is left in place.
func (a *App) Close() {
	if a.Channel != nil {
		a.Channel.Close()
	}
	a.Notifications.Close()
	a.Balances.Close()
	a.ChessLink.Close()
	a.Currency.Close()
	a.Sessions.Close()
}
