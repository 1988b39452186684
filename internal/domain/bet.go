package domain

import (
	"fmt"
	"strings"
	"time"
)

type BetID string
type BetStatus string
type ColorPreference string

const (
	BetStatusPending   BetStatus = "pending"
	BetStatusMatched   BetStatus = "matched"
	BetStatusCompleted BetStatus = "completed"
	BetStatusCancelled BetStatus = "cancelled"
	BetStatusExpired   BetStatus = "expired"

	ColorWhite  ColorPreference = "white"
	ColorBlack  ColorPreference = "black"
	ColorRandom ColorPreference = "random"
)

type Bet struct {
	ID          BetID
	Creator     string
	Opponent    string
	Amount      float64
	Currency    Currency
	Status      BetStatus
	TimeControl string
	Color       ColorPreference
	Winner      string
	GameURL     string
	CreatedAt   time.Time
}

type PlaceBet struct {
	Amount          float64
	Currency        Currency
	TimeControl     string
	ColorPreference ColorPreference
	OpponentID      string
}

func (p PlaceBet) Validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}
	switch p.Currency {
	case CurrencyTokens, CurrencySweepstakes:
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedCurrency, p.Currency)
	}
	switch p.ColorPreference {
	case "", ColorWhite, ColorBlack, ColorRandom:
	default:
		return fmt.Errorf("unsupported color preference %q", p.ColorPreference)
	}

	return nil
}

// AvailableBets keeps the first record for every id and drops records without one.
// The input order is preserved.
func AvailableBets(candidates []Bet) []Bet {
	bets := make([]Bet, 0, len(candidates))
	seen := make(map[BetID]struct{}, len(candidates))
	for _, bet := range candidates {
		id := BetID(strings.TrimSpace(string(bet.ID)))
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		bet.ID = id
		bets = append(bets, bet)
	}

	return bets
}

// Open reports whether the bet still awaits an opponent or a result.
func (b Bet) Open() bool {
	return b.Status == BetStatusPending || b.Status == BetStatusMatched
}
