package application

import (
	"github.com/bnema/chesswager-cli/internal/domain"
)

// Overview is everything the dashboard shows for the signed-in user.
type Overview struct {
	Session       domain.Session
	Balances      domain.BalanceSnapshot
	Currency      domain.Currency
	ChessLink     domain.ChessLinkStatus
	Notifications []domain.Notification
	Unread        int
	OpenBets      []domain.Bet
}
