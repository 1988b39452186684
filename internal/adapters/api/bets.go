package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bnema/chesswager-cli/internal/domain"
)

type placeBetRequest struct {
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	TimeControl     string  `json:"timeControl,omitempty"`
	ColorPreference string  `json:"colorPreference,omitempty"`
	OpponentID      string  `json:"opponentId,omitempty"`
}

func (c *Client) PlaceBet(ctx context.Context, bet domain.PlaceBet) (domain.Bet, error) {
	body := placeBetRequest{
		Amount:          bet.Amount,
		Currency:        string(bet.Currency),
		TimeControl:     bet.TimeControl,
		ColorPreference: string(bet.ColorPreference),
		OpponentID:      bet.OpponentID,
	}

	var response betResponse
	if err := c.do(ctx, "place bet", http.MethodPost, "/bets/place", body, &response); err != nil {
		return domain.Bet{}, err
	}
	return response.toDomain(), nil
}

func (c *Client) AcceptBet(ctx context.Context, id domain.BetID) (domain.Bet, error) {
	var response betResponse
	if err := c.do(ctx, "accept bet", http.MethodPost, "/bets/accept/"+url.PathEscape(string(id)), nil, &response); err != nil {
		return domain.Bet{}, err
	}
	return response.toDomain(), nil
}

func (c *Client) CancelBet(ctx context.Context, id domain.BetID) (domain.Bet, error) {
	var response betResponse
	if err := c.do(ctx, "cancel bet", http.MethodPost, "/bets/cancel/"+url.PathEscape(string(id)), nil, &response); err != nil {
		return domain.Bet{}, err
	}
	return response.toDomain(), nil
}

func (c *Client) BetHistory(ctx context.Context) ([]domain.Bet, error) {
	var response betListResponse
	if err := c.do(ctx, "fetch bet history", http.MethodGet, "/bets/history", nil, &response); err != nil {
		return nil, err
	}
	return response.toDomain(), nil
}

// Seekers returns open bets as the server lists them; duplicates are not removed here.
func (c *Client) Seekers(ctx context.Context) ([]domain.Bet, error) {
	var response betListResponse
	if err := c.do(ctx, "fetch seekers", http.MethodGet, "/bets/seekers", nil, &response); err != nil {
		return nil, err
	}
	return response.toDomain(), nil
}
