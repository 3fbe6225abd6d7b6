package ledger

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
)

const (
	discriminatorSize = 8

	baseAccountName     = "BaseAccount"
	addGifInstruction   = "add_gif"
	initListInstruction = "start_stuff_off"
)

var errDiscriminatorMismatch = errors.New("account discriminator mismatch")

// accountDiscriminator is the 8-byte prefix Anchor writes in front of account data.
func accountDiscriminator(name string) [discriminatorSize]byte {
	return discriminator("account:" + name)
}

func instructionDiscriminator(name string) [discriminatorSize]byte {
	return discriminator("global:" + name)
}

func discriminator(preimage string) [discriminatorSize]byte {
	sum := sha256.Sum256([]byte(preimage))

	var out [discriminatorSize]byte
	copy(out[:], sum[:discriminatorSize])
	return out
}

type gifItem struct {
	GifLink     string
	UserAddress solana.PublicKey
}

// baseAccount mirrors the program's BaseAccount borsh layout.
type baseAccount struct {
	TotalGifs uint64
	GifList   []gifItem
}

func decodeBaseAccount(data []byte) (baseAccount, error) {
	want := accountDiscriminator(baseAccountName)
	if len(data) < discriminatorSize {
		return baseAccount{}, fmt.Errorf("account data too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:discriminatorSize], want[:]) {
		return baseAccount{}, errDiscriminatorMismatch
	}

	var account baseAccount
	if err := bin.NewBorshDecoder(data[discriminatorSize:]).Decode(&account); err != nil {
		return baseAccount{}, fmt.Errorf("decode %s: %w", baseAccountName, err)
	}

	return account, nil
}

func encodeBaseAccount(account baseAccount) ([]byte, error) {
	disc := accountDiscriminator(baseAccountName)

	var buf bytes.Buffer
	buf.Write(disc[:])
	if err := bin.NewBorshEncoder(&buf).Encode(account); err != nil {
		return nil, fmt.Errorf("encode %s: %w", baseAccountName, err)
	}

	return buf.Bytes(), nil
}

// encodeInstruction prefixes borsh-encoded args with the instruction discriminator.
func encodeInstruction(name string, args ...interface{}) ([]byte, error) {
	disc := instructionDiscriminator(name)

	var buf bytes.Buffer
	buf.Write(disc[:])
	encoder := bin.NewBorshEncoder(&buf)
	for _, arg := range args {
		if err := encoder.Encode(arg); err != nil {
			return nil, fmt.Errorf("encode %s args: %w", name, err)
		}
	}

	return buf.Bytes(), nil
}
