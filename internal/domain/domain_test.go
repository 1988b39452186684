package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsExpiredAtExactInstant(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	assert.False(t, Claims{ExpiresAt: now.Add(time.Second)}.Expired(now))
	assert.True(t, Claims{ExpiresAt: now}.Expired(now))
	assert.True(t, Claims{ExpiresAt: now.Add(-time.Second)}.Expired(now))
	assert.True(t, Claims{}.Expired(now), "missing expiry counts as expired")
}

func TestClaimsIsAdmin(t *testing.T) {
	assert.True(t, Claims{Role: RoleAdmin}.IsAdmin())
	assert.True(t, Claims{Role: "ADMIN"}.IsAdmin())
	assert.False(t, Claims{Role: RoleUser}.IsAdmin())
	assert.False(t, Claims{}.IsAdmin())
}

func TestSessionAnonymous(t *testing.T) {
	assert.True(t, Session{}.Anonymous())
	assert.True(t, Session{Credential: "  "}.Anonymous())
	assert.False(t, Session{Credential: "token"}.Anonymous())
}

func TestParseCurrencyAliases(t *testing.T) {
	for raw, want := range map[string]Currency{
		"tokens":      CurrencyTokens,
		" Token ":     CurrencyTokens,
		"tkn":         CurrencyTokens,
		"sweepstakes": CurrencySweepstakes,
		"SC":          CurrencySweepstakes,
		"sweeps":      CurrencySweepstakes,
	} {
		got, err := ParseCurrency(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseCurrency("doge")
	require.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestBalanceDebitFloorsAtZero(t *testing.T) {
	b := BalanceSnapshot{Tokens: 200, Sweepstakes: 5}

	assert.InDelta(t, 150, b.Debit(CurrencyTokens, 50).Tokens, 0.0001)
	assert.InDelta(t, 0, b.Debit(CurrencySweepstakes, 10).Sweepstakes, 0.0001)
	assert.Equal(t, b, b.Debit(CurrencyTokens, -3))
	assert.InDelta(t, 200, b.Tokens, 0.0001, "debit returns a copy")
}

func TestBalanceValidateRejectsNegative(t *testing.T) {
	require.NoError(t, BalanceSnapshot{}.Validate())
	require.Error(t, BalanceSnapshot{Tokens: -1}.Validate())
	require.Error(t, BalanceSnapshot{Sweepstakes: -1}.Validate())
}

func TestChessLinkUsernameOnlyWhenConnected(t *testing.T) {
	assert.Equal(t, "", ChessLinkStatus{RemoteUsername: "ghost"}.Username())
	assert.Equal(t, "DrNykterstein", ChessLinkStatus{Connected: true, RemoteUsername: " DrNykterstein "}.Username())
}

func TestNotificationValidateRequiresID(t *testing.T) {
	require.NoError(t, Notification{ID: "n-1"}.Validate())
	require.Error(t, Notification{ID: " "}.Validate())
}
