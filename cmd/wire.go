package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/bnema/chesswager-cli/internal/adapters/api"
	chainstore "github.com/bnema/chesswager-cli/internal/adapters/credentials/chain"
	filestore "github.com/bnema/chesswager-cli/internal/adapters/credentials/file"
	passstore "github.com/bnema/chesswager-cli/internal/adapters/credentials/pass"
	"github.com/bnema/chesswager-cli/internal/adapters/realtime"
	"github.com/bnema/chesswager-cli/internal/application"
	"github.com/bnema/chesswager-cli/internal/config"
	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/logging"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	cfg        *config.Config
	logger     zerolog.Logger
	store      ports.CredentialStore
	clock      ports.Clock
	httpClient *http.Client
	currency   domain.Currency
}

// session is one started application graph. Close must run before the command returns.
type session struct {
	*application.App
	client *api.Client
}

func wireApp() (*app, error) {
	homeDir, err := config.DefaultHome()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	currency, err := domain.ParseCurrency(cfg.Wager.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("wager.default_currency: %w", err)
	}

	store, err := newCredentialStore(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	return &app{
		cfg:        cfg,
		logger:     logging.New(os.Stderr, cfg.Log.Level),
		store:      store,
		clock:      ports.SystemClock{},
		httpClient: &http.Client{Timeout: cfg.API.Timeout},
		currency:   currency,
	}, nil
}

func newCredentialStore(cfg config.SessionConfig) (ports.CredentialStore, error) {
	switch cfg.Backend {
	case "file":
		return filestore.NewStore(cfg.Path), nil
	case "pass":
		return passstore.NewStore(passstore.DefaultEntry), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(passstore.DefaultEntry, cfg.Path)
	}
}

// liveOptions turn on the realtime connection for a started session.
type liveOptions struct {
	metrics     *realtime.Metrics
	onLifecycle func(realtime.Lifecycle)
}

// start builds the application graph and restores the persisted session.
// A non-nil live also keeps a realtime connection for the signed-in user.
func (a *app) start(ctx context.Context, live *liveOptions) (*session, error) {
	s := &session{}
	s.client = api.NewClient(a.cfg.API.BaseURL, a.httpClient, func() string {
		return s.Sessions.Credential()
	})

	opts := application.Options{
		Store:           a.store,
		Clock:           a.clock,
		Backend:         s.client,
		Decode:          api.DecodeNotification,
		ConnectURL:      s.client.LichessConnectURL,
		DefaultCurrency: a.currency,
		Logger:          a.logger,
	}
	if live != nil {
		opts.Dialer = realtime.NewDialer(realtime.Options{
			URL:                  a.cfg.Realtime.URL,
			MaxReconnectAttempts: a.cfg.Realtime.MaxReconnectAttempts,
			ReconnectDelay:       a.cfg.Realtime.ReconnectDelay,
			Logger:               a.logger,
			Metrics:              live.metrics,
			OnLifecycle:          live.onLifecycle,
		})
	}

	s.App = application.NewApp(opts)
	if err := s.Start(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return s, nil
}

// startSignedIn is start for commands that need a session.
func (a *app) startSignedIn(ctx context.Context, live *liveOptions) (*session, error) {
	s, err := a.start(ctx, live)
	if err != nil {
		return nil, err
	}
	if _, ok := s.Sessions.Current(); !ok {
		s.Close()
		return nil, errPleaseLogIn
	}

	return s, nil
}
