package application

import (
	"context"
	"fmt"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/logging"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/rs/zerolog"
)

type ChessLinkState struct {
	Phase  Phase
	Status domain.ChessLinkStatus
}

// ConnectURLBuilder returns the page that starts linking a chess account.
type ConnectURLBuilder func(redirectURI, state string) string

type ChessLinkContext struct {
	base

	api        ports.ChessLinkAPI
	connectURL ConnectURLBuilder
	logger     zerolog.Logger

	status domain.ChessLinkStatus
}

func NewChessLinkContext(api ports.ChessLinkAPI, connectURL ConnectURLBuilder, logger zerolog.Logger) *ChessLinkContext {
	return &ChessLinkContext{
		base:       newBase(),
		api:        api,
		connectURL: connectURL,
		logger:     logging.Component(logger, "chess-link"),
	}
}

func (c *ChessLinkContext) Attach(sessions *SessionManager) {
	c.track(sessions.Watch(c.onSession))
}

func (c *ChessLinkContext) Close() {
	c.shutdown()
}

func (c *ChessLinkContext) WaitReady(ctx context.Context) error {
	return c.waitReady(ctx)
}

func (c *ChessLinkContext) Snapshot() ChessLinkState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ChessLinkState{Phase: c.scope.phase, Status: c.status}
}

func (c *ChessLinkContext) ConnectURL(redirectURI, state string) (string, error) {
	c.mu.Lock()
	anonymous := c.scope.anonymous
	c.mu.Unlock()
	if anonymous {
		return "", domain.ErrNotLoggedIn
	}
	return c.connectURL(redirectURI, state), nil
}

func (c *ChessLinkContext) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.scope.anonymous {
		c.mu.Unlock()
		return domain.ErrNotLoggedIn
	}
	generation, sequence := c.scope.begin()
	c.mu.Unlock()

	status, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("refresh chess link")
		return fmt.Errorf("refresh chess link: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scope.accept(generation, sequence) {
		c.status = status
	}
	return nil
}

func (c *ChessLinkContext) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	if c.scope.anonymous {
		c.mu.Unlock()
		return domain.ErrNotLoggedIn
	}
	generation, sequence := c.scope.begin()
	c.mu.Unlock()

	if err := c.api.DisconnectLichess(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("disconnect chess account")
		return fmt.Errorf("disconnect chess account: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scope.accept(generation, sequence) {
		c.status = domain.ChessLinkStatus{}
	}
	return nil
}

// fetch asks for the link status and, only when linked, the profile holding the remote username.
func (c *ChessLinkContext) fetch(ctx context.Context) (domain.ChessLinkStatus, error) {
	connected, err := c.api.LichessStatus(ctx)
	if err != nil {
		return domain.ChessLinkStatus{}, err
	}
	if !connected {
		return domain.ChessLinkStatus{}, nil
	}

	profile, err := c.api.Profile(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("fetch profile for chess username")
		return domain.ChessLinkStatus{Connected: true}, nil
	}
	return domain.ChessLinkStatus{Connected: true, RemoteUsername: profile.LichessUsername}, nil
}

func (c *ChessLinkContext) onSession(state SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	ctx := c.scope.reset(state)
	c.status = domain.ChessLinkStatus{}
	if state.Anonymous() {
		return
	}

	generation, sequence := c.scope.begin()
	c.spawn(func() { c.load(ctx, generation, sequence) })
}

func (c *ChessLinkContext) load(ctx context.Context, generation, sequence uint64) {
	status, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.scope.accept(generation, sequence) {
		return
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("load chess link")
		status = domain.ChessLinkStatus{}
	}
	c.status = status
}
