package wallet

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"os"
	"strings"

	solana "github.com/gagliardetto/solana-go"
)

var (
	ErrWalletExists = errors.New("wallet already exists")
	ErrInvalidKey   = errors.New("invalid wallet key")
)

// ParsePrivateKey accepts a base58 secret key or the path to a solana-keygen JSON keypair file.
func ParsePrivateKey(source string) (solana.PrivateKey, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		key, err := solana.PrivateKeyFromSolanaKeygenFile(source)
		if err != nil {
			return nil, fmt.Errorf("%w: read keygen file: %v", ErrInvalidKey, err)
		}
		if err := validateKey(key); err != nil {
			return nil, err
		}
		return key, nil
	}

	key, err := solana.PrivateKeyFromBase58(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	return key, nil
}

func validateKey(key solana.PrivateKey) error {
	if len(key) != ed25519.PrivateKeySize {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, ed25519.PrivateKeySize, len(key))
	}
	return nil
}
