package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/chesswager-cli/internal/domain"
)

// flexID accepts ids serialized either as strings or as numbers.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*id = flexID(strings.TrimSpace(text))
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("id must be a string or a number")
	}
	*id = flexID(number.String())

	return nil
}

type tokenResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

func (r *tokenResponse) credential() string {
	if token := strings.TrimSpace(r.Token); token != "" {
		return token
	}
	return strings.TrimSpace(r.AccessToken)
}

func (r *tokenResponse) validate() error {
	if r.credential() == "" {
		return errors.New("token is required")
	}
	return nil
}

type profileResponse struct {
	ID              flexID `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	LichessUsername string `json:"lichessUsername"`
}

func (r *profileResponse) validate() error {
	if r.ID == "" {
		return errors.New("id is required")
	}
	return nil
}

func (r *profileResponse) toDomain() domain.Profile {
	role := domain.Role(strings.ToLower(strings.TrimSpace(r.Role)))
	if role == "" {
		role = domain.RoleUser
	}

	return domain.Profile{
		ID:              string(r.ID),
		Username:        strings.TrimSpace(r.Username),
		Email:           strings.TrimSpace(r.Email),
		Role:            role,
		LichessUsername: strings.TrimSpace(r.LichessUsername),
	}
}

type notificationRecord struct {
	ID        flexID    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r notificationRecord) toDomain() domain.Notification {
	return domain.Notification{
		ID:        domain.NotificationID(r.ID),
		Message:   r.Message,
		Read:      r.Read,
		CreatedAt: r.CreatedAt,
	}
}

type notificationBatchResponse struct {
	Notifications []notificationRecord `json:"notifications"`
	Total         *int                 `json:"total"`
}

func (r *notificationBatchResponse) validate() error {
	if r.Notifications == nil {
		return errors.New("notifications is required")
	}
	if r.Total == nil {
		return errors.New("total is required")
	}
	if *r.Total < 0 {
		return errors.New("total is negative")
	}
	for i, record := range r.Notifications {
		if err := record.toDomain().Validate(); err != nil {
			return fmt.Errorf("notifications[%d]: %w", i, err)
		}
	}
	return nil
}

func (r *notificationBatchResponse) toDomain() domain.NotificationBatch {
	batch := domain.NotificationBatch{
		Notifications: make([]domain.Notification, 0, len(r.Notifications)),
		Total:         *r.Total,
	}
	for _, record := range r.Notifications {
		batch.Notifications = append(batch.Notifications, record.toDomain())
	}
	return batch
}

// DecodeNotification parses and validates a single realtime notification payload.
func DecodeNotification(payload json.RawMessage) (domain.Notification, error) {
	var record notificationRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.Notification{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	notification := record.toDomain()
	if err := notification.Validate(); err != nil {
		return domain.Notification{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return notification, nil
}

type balancesResponse struct {
	TokenBalance       *float64 `json:"tokenBalance"`
	SweepstakesBalance *float64 `json:"sweepstakesBalance"`
}

func (r *balancesResponse) validate() error {
	if r.TokenBalance == nil {
		return errors.New("tokenBalance is required")
	}
	if r.SweepstakesBalance == nil {
		return errors.New("sweepstakesBalance is required")
	}
	return r.toDomain().Validate()
}

func (r *balancesResponse) toDomain() domain.BalanceSnapshot {
	return domain.BalanceSnapshot{Tokens: *r.TokenBalance, Sweepstakes: *r.SweepstakesBalance}
}

type amountResponse struct {
	Balance *float64 `json:"balance"`
}

func (r *amountResponse) validate() error {
	if r.Balance == nil {
		return errors.New("balance is required")
	}
	if *r.Balance < 0 {
		return errors.New("balance is negative")
	}
	return nil
}

type betRecord struct {
	ID              flexID    `json:"id"`
	Creator         string    `json:"creator"`
	Opponent        string    `json:"opponent"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	TimeControl     string    `json:"timeControl"`
	ColorPreference string    `json:"colorPreference"`
	Winner          string    `json:"winner"`
	GameURL         string    `json:"gameUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (r *betRecord) validate() error {
	if r.Amount < 0 {
		return errors.New("amount is negative")
	}
	return nil
}

func (r *betRecord) toDomain() domain.Bet {
	currency, err := domain.ParseCurrency(r.Currency)
	if err != nil {
		currency = domain.Currency(strings.TrimSpace(r.Currency))
	}

	return domain.Bet{
		ID:          domain.BetID(r.ID),
		Creator:     r.Creator,
		Opponent:    r.Opponent,
		Amount:      r.Amount,
		Currency:    currency,
		Status:      domain.BetStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		TimeControl: r.TimeControl,
		Color:       domain.ColorPreference(strings.ToLower(strings.TrimSpace(r.ColorPreference))),
		Winner:      r.Winner,
		GameURL:     r.GameURL,
		CreatedAt:   r.CreatedAt,
	}
}

// betResponse accepts either a bare bet or one wrapped as {"bet": {...}}.
type betResponse struct {
	betRecord
}

func (r *betResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Bet *betRecord `json:"bet"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Bet != nil {
		r.betRecord = *wrapped.Bet
		return nil
	}
	return json.Unmarshal(data, &r.betRecord)
}

func (r *betResponse) validate() error {
	if r.ID == "" {
		return errors.New("id is required")
	}
	return r.betRecord.validate()
}

// betListResponse accepts either a bare array or {"bets": [...]}.
type betListResponse struct {
	Bets []betRecord
}

func (r *betListResponse) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &r.Bets)
	}

	var wrapped struct {
		Bets []betRecord `json:"bets"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	r.Bets = wrapped.Bets
	return nil
}

func (r *betListResponse) validate() error {
	if r.Bets == nil {
		return errors.New("bets is required")
	}
	for i := range r.Bets {
		if err := r.Bets[i].validate(); err != nil {
			return fmt.Errorf("bets[%d]: %w", i, err)
		}
	}
	return nil
}

func (r *betListResponse) toDomain() []domain.Bet {
	bets := make([]domain.Bet, 0, len(r.Bets))
	for i := range r.Bets {
		bets = append(bets, r.Bets[i].toDomain())
	}
	return bets
}

type lichessStatusResponse struct {
	Connected *bool `json:"connected"`
}

func (r *lichessStatusResponse) validate() error {
	if r.Connected == nil {
		return errors.New("connected is required")
	}
	return nil
}

type dashboardResponse struct {
	TotalUsers     *int64  `json:"totalUsers"`
	TotalBets      *int64  `json:"totalBets"`
	ActiveBets     int64   `json:"activeBets"`
	TotalVolume    float64 `json:"totalVolume"`
	TokensMinted   float64 `json:"tokensMinted"`
	PendingPayouts float64 `json:"pendingPayouts"`
}

func (r *dashboardResponse) validate() error {
	if r.TotalUsers == nil {
		return errors.New("totalUsers is required")
	}
	if r.TotalBets == nil {
		return errors.New("totalBets is required")
	}
	return nil
}

func (r *dashboardResponse) toDomain() domain.Dashboard {
	return domain.Dashboard{
		TotalUsers:    *r.TotalUsers,
		TotalBets:     *r.TotalBets,
		ActiveBets:    r.ActiveBets,
		TotalVolume:   r.TotalVolume,
		TokensMinted:  r.TokensMinted,
		PendingPayout: r.PendingPayouts,
	}
}
