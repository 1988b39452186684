package application

import (
	"sync"

	"github.com/bnema/chesswager-cli/internal/domain"
)

// CurrencyContext holds the currency selected for wagering. It lives in memory
// only and returns to the default on every session change.
type CurrencyContext struct {
	fallback domain.Currency

	mu       sync.Mutex
	selected domain.Currency
	release  func()
}

func NewCurrencyContext(fallback domain.Currency) *CurrencyContext {
	if fallback == "" {
		fallback = domain.CurrencyTokens
	}
	return &CurrencyContext{fallback: fallback, selected: fallback}
}

func (c *CurrencyContext) Attach(sessions *SessionManager) {
	release := sessions.Watch(func(SessionState) {
		c.mu.Lock()
		c.selected = c.fallback
		c.mu.Unlock()
	})

	c.mu.Lock()
	c.release = release
	c.mu.Unlock()
}

func (c *CurrencyContext) Close() {
	c.mu.Lock()
	release := c.release
	c.release = nil
	c.mu.Unlock()
	if release != nil {
		release()
	}
}

func (c *CurrencyContext) Selected() domain.Currency {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

func (c *CurrencyContext) Select(raw string) (domain.Currency, error) {
	currency, err := domain.ParseCurrency(raw)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.selected = currency
	c.mu.Unlock()
	return currency, nil
}
