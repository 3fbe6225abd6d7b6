package ledger

import (
	"testing"

	solana "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminatorsAreStablePrefixes(t *testing.T) {
	account := accountDiscriminator(baseAccountName)
	assert.Len(t, account, discriminatorSize)
	assert.Equal(t, account, accountDiscriminator(baseAccountName))
	assert.NotEqual(t, account, instructionDiscriminator(baseAccountName))
	assert.NotEqual(t, instructionDiscriminator(addGifInstruction), instructionDiscriminator(initListInstruction))
}

func TestDecodeBaseAccount(t *testing.T) {
	submitter := solana.NewWallet().PublicKey()
	data, err := encodeBaseAccount(baseAccount{
		TotalGifs: 2,
		GifList: []gifItem{
			{GifLink: "https://media.giphy.com/a.gif", UserAddress: submitter},
			{GifLink: "https://media.giphy.com/b.gif", UserAddress: submitter},
		},
	})
	require.NoError(t, err)

	decoded, err := decodeBaseAccount(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), decoded.TotalGifs)
	require.Len(t, decoded.GifList, 2)
	assert.Equal(t, "https://media.giphy.com/b.gif", decoded.GifList[1].GifLink)
	assert.True(t, decoded.GifList[0].UserAddress.Equals(submitter))
}

func TestDecodeBaseAccountRejectsForeignData(t *testing.T) {
	_, err := decodeBaseAccount([]byte{1, 2, 3})
	require.Error(t, err)

	_, err = decodeBaseAccount(make([]byte, 32))
	require.ErrorIs(t, err, errDiscriminatorMismatch)
}

func TestEncodeInstructionPrefixesDiscriminator(t *testing.T) {
	data, err := encodeInstruction(addGifInstruction, "https://media.giphy.com/a.gif")
	require.NoError(t, err)

	disc := instructionDiscriminator(addGifInstruction)
	assert.Equal(t, disc[:], data[:discriminatorSize])
	// borsh string: u32 little-endian length then bytes
	assert.Equal(t, []byte{29, 0, 0, 0}, data[discriminatorSize:discriminatorSize+4])
	assert.Equal(t, "https://media.giphy.com/a.gif", string(data[discriminatorSize+4:]))

	bare, err := encodeInstruction(initListInstruction)
	require.NoError(t, err)
	assert.Len(t, bare, discriminatorSize)
}
