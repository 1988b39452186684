package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/logging"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/rs/zerolog"
)

type BetService struct {
	api      ports.BetAPI
	sessions *SessionManager
	balances *BalanceContext
	currency *CurrencyContext
	logger   zerolog.Logger
}

func NewBetService(api ports.BetAPI, sessions *SessionManager, balances *BalanceContext, currency *CurrencyContext, logger zerolog.Logger) *BetService {
	return &BetService{
		api:      api,
		sessions: sessions,
		balances: balances,
		currency: currency,
		logger:   logging.Component(logger, "bets"),
	}
}

// Place debits the local balance before the request is sent. A failed request
// triggers an authoritative balance refetch.
func (s *BetService) Place(ctx context.Context, cmd PlaceBetCommand) (domain.Bet, error) {
	if _, ok := s.sessions.Current(); !ok {
		return domain.Bet{}, domain.ErrNotLoggedIn
	}

	currency := cmd.Currency
	if currency == "" {
		currency = s.currency.Selected()
	}
	request := domain.PlaceBet{
		Amount:          cmd.Amount,
		Currency:        currency,
		TimeControl:     strings.TrimSpace(cmd.TimeControl),
		ColorPreference: cmd.ColorPreference,
		OpponentID:      strings.TrimSpace(cmd.OpponentID),
	}
	if err := request.Validate(); err != nil {
		return domain.Bet{}, err
	}

	if err := s.balances.WaitReady(ctx); err != nil {
		return domain.Bet{}, err
	}
	if available := s.balances.Available(currency); available < request.Amount {
		return domain.Bet{}, fmt.Errorf("%w: %.2f %s available", domain.ErrInsufficientBalance, available, currency.Label())
	}
	if err := s.balances.Debit(currency, request.Amount); err != nil {
		return domain.Bet{}, err
	}

	bet, err := s.api.PlaceBet(ctx, request)
	if err != nil {
		s.reconcile(ctx, "place")
		return domain.Bet{}, fmt.Errorf("place bet: %w", err)
	}
	return bet, nil
}

func (s *BetService) Accept(ctx context.Context, id domain.BetID) (domain.Bet, error) {
	if err := s.requireSession(id); err != nil {
		return domain.Bet{}, err
	}

	bet, err := s.api.AcceptBet(ctx, id)
	if err != nil {
		return domain.Bet{}, fmt.Errorf("accept bet %s: %w", id, err)
	}
	s.reconcile(ctx, "accept")
	return bet, nil
}

func (s *BetService) Cancel(ctx context.Context, id domain.BetID) (domain.Bet, error) {
	if err := s.requireSession(id); err != nil {
		return domain.Bet{}, err
	}

	bet, err := s.api.CancelBet(ctx, id)
	if err != nil {
		return domain.Bet{}, fmt.Errorf("cancel bet %s: %w", id, err)
	}
	s.reconcile(ctx, "cancel")
	return bet, nil
}

func (s *BetService) History(ctx context.Context) ([]domain.Bet, error) {
	if _, ok := s.sessions.Current(); !ok {
		return nil, domain.ErrNotLoggedIn
	}

	bets, err := s.api.BetHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("bet history: %w", err)
	}
	return bets, nil
}

// Available lists open bets with one record per id, in server order.
func (s *BetService) Available(ctx context.Context) ([]domain.Bet, error) {
	if _, ok := s.sessions.Current(); !ok {
		return nil, domain.ErrNotLoggedIn
	}

	seekers, err := s.api.Seekers(ctx)
	if err != nil {
		return nil, fmt.Errorf("available bets: %w", err)
	}
	return domain.AvailableBets(seekers), nil
}

func (s *BetService) requireSession(id domain.BetID) error {
	if _, ok := s.sessions.Current(); !ok {
		return domain.ErrNotLoggedIn
	}
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("bet id is required")
	}
	return nil
}

func (s *BetService) reconcile(ctx context.Context, after string) {
	if err := s.balances.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Str("after", after).Msg("reconcile balances")
	}
}
