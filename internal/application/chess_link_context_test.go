package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChessLinkHarness(t *testing.T) (*SessionManager, *mocks.MockChessLinkAPI, *ChessLinkContext) {
	t.Helper()

	sessions := newTestSessions(&memoryStore{}, newFakeClock())
	api := mocks.NewMockChessLinkAPI(t)
	link := NewChessLinkContext(api, func(redirectURI, state string) string {
		return "https://backend/lichess/auth?redirect_uri=" + redirectURI + "&state=" + state
	}, zerolog.Nop())
	link.Attach(sessions)
	t.Cleanup(link.Close)
	return sessions, api, link
}

func TestChessLinkFetchesProfileOnlyWhenConnected(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		sessions, api, link := newChessLinkHarness(t)
		api.EXPECT().LichessStatus(mockAnyContext()).Return(true, nil).Once()
		api.EXPECT().Profile(mockAnyContext()).Return(domain.Profile{LichessUsername: "DrNykterstein"}, nil).Once()

		require.NoError(t, sessions.Login(context.Background(), mintToken(t, testEpoch.Add(time.Hour), nil)))
		require.NoError(t, link.WaitReady(waitCtx(t)))

		status := link.Snapshot().Status
		assert.True(t, status.Connected)
		assert.Equal(t, "DrNykterstein", status.Username())
	})

	t.Run("not connected", func(t *testing.T) {
		sessions, api, link := newChessLinkHarness(t)
		api.EXPECT().LichessStatus(mockAnyContext()).Return(false, nil).Once()

		require.NoError(t, sessions.Login(context.Background(), mintToken(t, testEpoch.Add(time.Hour), nil)))
		require.NoError(t, link.WaitReady(waitCtx(t)))

		assert.Equal(t, domain.ChessLinkStatus{}, link.Snapshot().Status)
	})

	t.Run("status failure degrades", func(t *testing.T) {
		sessions, api, link := newChessLinkHarness(t)
		api.EXPECT().LichessStatus(mockAnyContext()).Return(false, errors.New("500")).Once()

		require.NoError(t, sessions.Login(context.Background(), mintToken(t, testEpoch.Add(time.Hour), nil)))
		require.NoError(t, link.WaitReady(waitCtx(t)))

		state := link.Snapshot()
		assert.Equal(t, PhaseReady, state.Phase)
		assert.False(t, state.Status.Connected)
	})
}

func TestChessLinkDisconnect(t *testing.T) {
	sessions, api, link := newChessLinkHarness(t)
	api.EXPECT().LichessStatus(mockAnyContext()).Return(true, nil).Once()
	api.EXPECT().Profile(mockAnyContext()).Return(domain.Profile{LichessUsername: "hikaru"}, nil).Once()
	require.NoError(t, sessions.Login(context.Background(), mintToken(t, testEpoch.Add(time.Hour), nil)))
	require.NoError(t, link.WaitReady(waitCtx(t)))

	api.EXPECT().DisconnectLichess(mockAnyContext()).Return(errors.New("nope")).Once()
	require.Error(t, link.Disconnect(context.Background()))
	assert.True(t, link.Snapshot().Status.Connected)

	api.EXPECT().DisconnectLichess(mockAnyContext()).Return(nil).Once()
	require.NoError(t, link.Disconnect(context.Background()))
	assert.Equal(t, domain.ChessLinkStatus{}, link.Snapshot().Status)
}

func TestChessLinkConnectURLRequiresSession(t *testing.T) {
	sessions, api, link := newChessLinkHarness(t)

	_, err := link.ConnectURL("http://127.0.0.1/cb", "s1")
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)

	api.EXPECT().LichessStatus(mockAnyContext()).Return(false, nil).Once()
	require.NoError(t, sessions.Login(context.Background(), mintToken(t, testEpoch.Add(time.Hour), nil)))

	url, err := link.ConnectURL("http://127.0.0.1/cb", "s1")
	require.NoError(t, err)
	assert.Contains(t, url, "state=s1")
	require.NoError(t, link.WaitReady(waitCtx(t)))
}

func TestCurrencyContextResetsOnSessionChange(t *testing.T) {
	sessions := newTestSessions(&memoryStore{}, newFakeClock())
	currency := NewCurrencyContext(domain.CurrencyTokens)
	currency.Attach(sessions)
	defer currency.Close()

	selected, err := currency.Select("sweepstakes")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencySweepstakes, selected)
	assert.Equal(t, domain.CurrencySweepstakes, currency.Selected())

	_, err = currency.Select("doubloons")
	require.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
	assert.Equal(t, domain.CurrencySweepstakes, currency.Selected())

	require.NoError(t, sessions.Login(context.Background(), mintToken(t, testEpoch.Add(time.Hour), nil)))
	assert.Equal(t, domain.CurrencyTokens, currency.Selected())
}
