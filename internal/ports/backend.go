package ports

import (
	"context"

	"github.com/bnema/chesswager-cli/internal/domain"
)

type AuthAPI interface {
	Register(ctx context.Context, registration domain.Registration) (string, error)
	Login(ctx context.Context, credentials domain.LoginCredentials) (string, error)
	Profile(ctx context.Context) (domain.Profile, error)
}

type NotificationAPI interface {
	ListNotifications(ctx context.Context) (domain.NotificationBatch, error)
	MarkNotificationRead(ctx context.Context, id domain.NotificationID) error
	MarkAllNotificationsRead(ctx context.Context) error
}

type BalanceAPI interface {
	Balances(ctx context.Context) (domain.BalanceSnapshot, error)
	TokenBalance(ctx context.Context) (float64, error)
}

type ChessLinkAPI interface {
	LichessStatus(ctx context.Context) (bool, error)
	Profile(ctx context.Context) (domain.Profile, error)
	DisconnectLichess(ctx context.Context) error
}

type BetAPI interface {
	PlaceBet(ctx context.Context, bet domain.PlaceBet) (domain.Bet, error)
	AcceptBet(ctx context.Context, id domain.BetID) (domain.Bet, error)
	CancelBet(ctx context.Context, id domain.BetID) (domain.Bet, error)
	BetHistory(ctx context.Context) ([]domain.Bet, error)
	Seekers(ctx context.Context) ([]domain.Bet, error)
}

type AdminAPI interface {
	Dashboard(ctx context.Context) (domain.Dashboard, error)
	Mint(ctx context.Context, mint domain.Mint) error
	Transfer(ctx context.Context, transfer domain.Transfer) error
	BalanceOf(ctx context.Context, address string) (float64, error)
}
