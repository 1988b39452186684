package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceLoginStartsSession(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	store := &memoryStore{}
	sessions := newTestSessions(store, newFakeClock())
	auth := NewAuthService(api, sessions)

	token := mintToken(t, testEpoch.Add(time.Hour), nil)
	api.EXPECT().Login(mockAnyContext(), domain.LoginCredentials{Email: "magnus@example.com", Password: "pw"}).Return(token, nil).Once()

	session, err := auth.Login(context.Background(), LoginCommand{Email: " magnus@example.com ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "magnus", session.Claims.Username)
	assert.Equal(t, token, store.value())

	require.NoError(t, auth.Logout(context.Background()))
	assert.Empty(t, store.value())
}

func TestAuthServiceRegisterRejectsExpiredCredential(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	sessions := newTestSessions(&memoryStore{}, newFakeClock())
	auth := NewAuthService(api, sessions)

	api.EXPECT().Register(mockAnyContext(), domain.Registration{Username: "u", Email: "e@x", Password: "p"}).
		Return(mintToken(t, testEpoch.Add(-time.Hour), nil), nil).Once()

	_, err := auth.Register(context.Background(), RegisterCommand{Username: "u", Email: "e@x", Password: "p"})
	require.ErrorIs(t, err, domain.ErrSessionExpired)

	_, err = auth.Register(context.Background(), RegisterCommand{Username: "u"})
	require.Error(t, err)
}

func TestAuthServiceLoginSurfacesBackendError(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	auth := NewAuthService(api, newTestSessions(&memoryStore{}, newFakeClock()))

	api.EXPECT().Login(mockAnyContext(), domain.LoginCredentials{Email: "a", Password: "b"}).Return("", errors.New("invalid credentials")).Once()

	_, err := auth.Login(context.Background(), LoginCommand{Email: "a", Password: "b"})
	require.ErrorContains(t, err, "invalid credentials")

	_, err = auth.Profile(context.Background())
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestAdminServiceRequiresAdminRole(t *testing.T) {
	api := mocks.NewMockAdminAPI(t)
	sessions := newTestSessions(&memoryStore{}, newFakeClock())
	admin := NewAdminService(api, sessions)

	_, err := admin.Dashboard(context.Background())
	require.ErrorIs(t, err, domain.ErrNotLoggedIn)

	require.NoError(t, sessions.Login(context.Background(), mintToken(t, testEpoch.Add(time.Hour), nil)))
	_, err = admin.Dashboard(context.Background())
	require.ErrorIs(t, err, domain.ErrForbidden)
	require.ErrorIs(t, admin.Mint(context.Background(), MintCommand{Address: "0x1", Amount: 1}), domain.ErrForbidden)

	require.NoError(t, sessions.Login(context.Background(), mintToken(t, testEpoch.Add(time.Hour), jwt.MapClaims{"role": "admin"})))
	api.EXPECT().Dashboard(mockAnyContext()).Return(domain.Dashboard{TotalUsers: 3}, nil).Once()
	dashboard, err := admin.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), dashboard.TotalUsers)
}

func TestAdminServiceValidatesInput(t *testing.T) {
	api := mocks.NewMockAdminAPI(t)
	sessions := newTestSessions(&memoryStore{}, newFakeClock())
	admin := NewAdminService(api, sessions)
	require.NoError(t, sessions.Login(context.Background(), mintToken(t, testEpoch.Add(time.Hour), jwt.MapClaims{"role": "admin"})))

	require.ErrorIs(t, admin.Mint(context.Background(), MintCommand{Address: "0x1", Amount: -1}), domain.ErrInvalidAmount)
	require.Error(t, admin.Transfer(context.Background(), TransferCommand{Amount: 1}))

	api.EXPECT().Transfer(mockAnyContext(), domain.Transfer{To: "0x2", Amount: 4}).Return(nil).Once()
	require.NoError(t, admin.Transfer(context.Background(), TransferCommand{To: " 0x2 ", Amount: 4}))

	api.EXPECT().BalanceOf(mockAnyContext(), "0x2").Return(4, nil).Once()
	balance, err := admin.BalanceOf(context.Background(), "0x2")
	require.NoError(t, err)
	assert.InDelta(t, 4, balance, 0.0001)
}
