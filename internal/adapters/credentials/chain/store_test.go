package chain

import (
	"context"
	"errors"
	"testing"

	passstore "github.com/bnema/chesswager-cli/internal/adapters/credentials/pass"
	"github.com/bnema/chesswager-cli/internal/domain"
	portmocks "github.com/bnema/chesswager-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return("from-pass", nil).Once()

	value, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreLoadFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Load(mock.Anything).Return("from-file", nil).Once()

	value, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreLoadReportsNotFoundWhenNeitherBackendHasCredential(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Load(mock.Anything).Return("", domain.ErrCredentialNotFound).Once()

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
}

func TestStoreLoadDoesNotFallbackOnCanceledContext(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return("", context.Canceled).Once()

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreSaveFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Save(mock.Anything, "jwt").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Save(mock.Anything, "jwt").Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), "jwt"))
}

func TestStoreSaveDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Save(mock.Anything, "jwt").Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), "jwt"))
}

func TestStoreClearClearsBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Clear(mock.Anything).Return(nil).Once()
	fallback.EXPECT().Clear(mock.Anything).Return(nil).Once()

	require.NoError(t, store.Clear(context.Background()))
}

func TestStoreClearToleratesMissingPass(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Clear(mock.Anything).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Clear(mock.Anything).Return(nil).Once()

	require.NoError(t, store.Clear(context.Background()))
}

func TestStoreClearReportsFallbackFailure(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	diskErr := errors.New("read-only file system")
	primary.EXPECT().Clear(mock.Anything).Return(nil).Once()
	fallback.EXPECT().Clear(mock.Anything).Return(diskErr).Once()

	err := store.Clear(context.Background())
	require.ErrorIs(t, err, diskErr)
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockCredentialStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockCredentialStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}
