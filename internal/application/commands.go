package application

import (
	"github.com/bnema/chesswager-cli/internal/domain"
)

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
}

// PlaceBetCommand places a wager. An empty Currency uses the selected currency.
type PlaceBetCommand struct {
	Amount          float64
	Currency        domain.Currency
	TimeControl     string
	ColorPreference domain.ColorPreference
	OpponentID      string
}

type MintCommand struct {
	Address string
	Amount  float64
}

type TransferCommand struct {
	To     string
	Amount float64
}
