package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	passstore "github.com/bnema/gifportal/internal/adapters/secrets/pass"
	"github.com/bnema/gifportal/internal/domain"
	portmocks "github.com/bnema/gifportal/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const walletKey = "gifportal/wallets/default/keypair"

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, walletKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), walletKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, walletKey).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, walletKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), walletKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetIsSecretNotFoundWhenNeitherBackendHasKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		primaryErr error
	}{
		{name: "pass missing entry", primaryErr: fmt.Errorf("pass get: %w", domain.ErrSecretNotFound)},
		{name: "pass not installed", primaryErr: passstore.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := portmocks.NewMockSecretStore(t)
			fallback := portmocks.NewMockSecretStore(t)
			store := NewStore(primary, fallback)

			primary.EXPECT().Get(mock.Anything, walletKey).Return("", tt.primaryErr).Once()
			fallback.EXPECT().Get(mock.Anything, walletKey).Return("", fmt.Errorf("file: %w", domain.ErrSecretNotFound)).Once()

			_, err := store.Get(context.Background(), walletKey)
			require.ErrorIs(t, err, domain.ErrSecretNotFound)
		})
	}
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, walletKey).Return("", errors.New("gpg failed")).Once()
	fallback.EXPECT().Get(mock.Anything, walletKey).Return("", errors.New("permission denied")).Once()

	_, err := store.Get(context.Background(), walletKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, walletKey, "secret").Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Put(mock.Anything, walletKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), walletKey, "secret"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, walletKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), walletKey, "secret"))
}

func TestStoreDeleteRemovesFromBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, walletKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, walletKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), walletKey))
}

func TestStoreDeleteSucceedsWhenOnlyFallbackWorks(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, walletKey).Return(errors.New("gpg failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, walletKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), walletKey))
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, walletKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), walletKey)
	require.ErrorIs(t, err, context.Canceled)
}
