package application

import (
	"context"
	"testing"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/ports"
	"github.com/bnema/gifportal/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortalStartFetchesOnceWhenTrusted(t *testing.T) {
	wallet := mocks.NewMockWalletProvider(t)
	wallet.EXPECT().Available(mockAnyContext()).Return(true).Once()
	wallet.EXPECT().Connect(mockAnyContext(), ports.ConnectOptions{OnlyIfTrusted: true}).Return(testIdentity, nil).Once()

	reader := mocks.NewMockListReader(t)
	reader.EXPECT().FetchList(mockAnyContext(), testListAddress).Return(remoteList("g1", "g2"), nil).Once()

	portal := NewPortal(NewWalletSession(wallet), NewListSynchronizer(reader, testListAddress))

	portal.Start(context.Background())
	portal.Start(context.Background())
	_, err := portal.Session().Connect(context.Background())
	require.NoError(t, err)
	portal.Lists().Wait()

	assert.Equal(t, []domain.MediaLink{"g1", "g2"}, portal.Lists().View().Links())
}

func TestPortalConnectAfterUntrustedProbeFetches(t *testing.T) {
	wallet := mocks.NewMockWalletProvider(t)
	wallet.EXPECT().Available(mockAnyContext()).Return(true)
	wallet.EXPECT().Connect(mockAnyContext(), ports.ConnectOptions{OnlyIfTrusted: true}).Return("", domain.ErrNotTrusted).Once()
	wallet.EXPECT().Connect(mockAnyContext(), ports.ConnectOptions{}).Return(testIdentity, nil).Once()

	reader := mocks.NewMockListReader(t)
	reader.EXPECT().FetchList(mockAnyContext(), testListAddress).Return(remoteList("g1"), nil).Once()

	portal := NewPortal(NewWalletSession(wallet), NewListSynchronizer(reader, testListAddress))
	portal.Start(context.Background())
	assert.Empty(t, portal.Lists().View().Entries)

	_, err := portal.Session().Connect(context.Background())
	require.NoError(t, err)
	portal.Lists().Wait()

	assert.Equal(t, []domain.MediaLink{"g1"}, portal.Lists().View().Links())
}

func TestPortalFailedConnectDoesNotFetch(t *testing.T) {
	wallet := mocks.NewMockWalletProvider(t)
	wallet.EXPECT().Available(mockAnyContext()).Return(true)
	wallet.EXPECT().Connect(mockAnyContext(), ports.ConnectOptions{}).Return("", domain.ErrAuthRejected)

	portal := NewPortal(NewWalletSession(wallet), NewListSynchronizer(mocks.NewMockListReader(t), testListAddress))

	_, err := portal.Session().Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrAuthRejected)
	portal.Lists().Wait()

	assert.True(t, portal.Lists().View().Available)
	assert.Empty(t, portal.Lists().View().Entries)
}
