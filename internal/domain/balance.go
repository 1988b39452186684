package domain

import (
	"fmt"
	"strings"
)

type Currency string

const (
	CurrencyTokens      Currency = "tokens"
	CurrencySweepstakes Currency = "sweepstakes"
)

func ParseCurrency(raw string) (Currency, error) {
	switch Currency(strings.ToLower(strings.TrimSpace(raw))) {
	case CurrencyTokens, "token", "tkn":
		return CurrencyTokens, nil
	case CurrencySweepstakes, "sweeps", "sc":
		return CurrencySweepstakes, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedCurrency, raw)
	}
}

func (c Currency) Label() string {
	switch c {
	case CurrencyTokens:
		return "Tokens"
	case CurrencySweepstakes:
		return "Sweepstakes"
	default:
		return string(c)
	}
}

type BalanceSnapshot struct {
	Tokens      float64
	Sweepstakes float64
}

func (b BalanceSnapshot) Of(currency Currency) float64 {
	switch currency {
	case CurrencySweepstakes:
		return b.Sweepstakes
	default:
		return b.Tokens
	}
}

// Debit returns the snapshot with amount removed from currency, never going below zero.
func (b BalanceSnapshot) Debit(currency Currency, amount float64) BalanceSnapshot {
	if amount <= 0 {
		return b
	}

	switch currency {
	case CurrencySweepstakes:
		b.Sweepstakes = floorZero(b.Sweepstakes - amount)
	default:
		b.Tokens = floorZero(b.Tokens - amount)
	}

	return b
}

func (b BalanceSnapshot) Validate() error {
	if b.Tokens < 0 {
		return fmt.Errorf("token balance is negative")
	}
	if b.Sweepstakes < 0 {
		return fmt.Errorf("sweepstakes balance is negative")
	}

	return nil
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
