package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/logging"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/rs/zerolog"
)

type BalanceState struct {
	Phase    Phase
	Balances domain.BalanceSnapshot
}

// BalanceContext keeps the wallet snapshot. Local debits are optimistic and are
// reconciled by a refetch after bet acceptance events, failed placements,
// accept or cancel, and explicit refresh.
type BalanceContext struct {
	base

	api    ports.BalanceAPI
	logger zerolog.Logger

	balances domain.BalanceSnapshot
	sub      ports.Subscription
}

func NewBalanceContext(api ports.BalanceAPI, logger zerolog.Logger) *BalanceContext {
	return &BalanceContext{
		base:   newBase(),
		api:    api,
		logger: logging.Component(logger, "balances"),
	}
}

func (c *BalanceContext) Attach(sessions *SessionManager, channel *RealtimeChannel) {
	c.track(sessions.Watch(c.onSession))
	if channel != nil {
		c.track(channel.WatchConnection(c.onConnection))
	}
}

func (c *BalanceContext) Close() {
	c.mu.Lock()
	c.releaseSubscriptionLocked()
	c.mu.Unlock()
	c.shutdown()
}

func (c *BalanceContext) WaitReady(ctx context.Context) error {
	return c.waitReady(ctx)
}

func (c *BalanceContext) Snapshot() BalanceState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return BalanceState{Phase: c.scope.phase, Balances: c.balances}
}

func (c *BalanceContext) Available(currency domain.Currency) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balances.Of(currency)
}

// Debit lowers the local balance right away, before the backend has answered.
func (c *BalanceContext) Debit(currency domain.Currency, amount float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scope.anonymous {
		return domain.ErrNotLoggedIn
	}
	c.balances = c.balances.Debit(currency, amount)
	return nil
}

// Refresh fetches the authoritative snapshot. On failure the current snapshot is kept.
func (c *BalanceContext) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.scope.anonymous {
		c.mu.Unlock()
		return domain.ErrNotLoggedIn
	}
	generation, sequence := c.scope.begin()
	c.mu.Unlock()

	balances, err := c.api.Balances(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("refresh balances")
		return fmt.Errorf("refresh balances: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scope.accept(generation, sequence) {
		c.balances = balances
	}
	return nil
}

// WalletTokens asks the token ledger for the signed-in user's balance. It does not
// touch the snapshot.
func (c *BalanceContext) WalletTokens(ctx context.Context) (float64, error) {
	c.mu.Lock()
	anonymous := c.scope.anonymous
	c.mu.Unlock()
	if anonymous {
		return 0, domain.ErrNotLoggedIn
	}

	balance, err := c.api.TokenBalance(ctx)
	if err != nil {
		return 0, fmt.Errorf("wallet token balance: %w", err)
	}
	return balance, nil
}

func (c *BalanceContext) onSession(state SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.releaseSubscriptionLocked()
	ctx := c.scope.reset(state)
	c.balances = domain.BalanceSnapshot{}
	if state.Anonymous() {
		return
	}

	generation, sequence := c.scope.begin()
	c.spawn(func() { c.load(ctx, generation, sequence) })
}

func (c *BalanceContext) load(ctx context.Context, generation, sequence uint64) {
	balances, err := c.api.Balances(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.scope.accept(generation, sequence) {
		return
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("load balances")
		balances = domain.BalanceSnapshot{}
	}
	c.balances = balances
}

func (c *BalanceContext) onConnection(state ConnectionState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseSubscriptionLocked()
	if c.closed || state.Conn == nil || c.scope.anonymous || state.Generation != c.scope.generation {
		return
	}

	generation := state.Generation
	c.sub = state.Conn.On(ports.EventBetAccepted, func(json.RawMessage) {
		c.reconcile(generation)
	})
}

// reconcile refetches in the background for a bet acceptance in generation.
func (c *BalanceContext) reconcile(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.scope.anonymous || generation != c.scope.generation {
		return
	}

	ctx := c.scopeContextLocked()
	c.spawn(func() {
		if err := c.Refresh(ctx); err != nil {
			c.logger.Debug().Err(err).Msg("reconcile after bet accepted")
		}
	})
}

func (c *BalanceContext) releaseSubscriptionLocked() {
	if c.sub != nil {
		c.sub.Unsubscribe()
		c.sub = nil
	}
}
