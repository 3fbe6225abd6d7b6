package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/logging"
	"github.com/bnema/gifportal/internal/ports"
	solana "github.com/gagliardetto/solana-go"
)

const DefaultSecretRef = "gifportal/wallets/default/keypair"

// Keypair is a local ed25519 wallet whose private key lives in the secret store.
type Keypair struct {
	secrets   ports.SecretStore
	trust     ports.TrustStore
	approver  ports.ConnectionApprover
	secretRef string

	mu        sync.Mutex
	connected solana.PrivateKey
}

var (
	_ ports.WalletProvider    = (*Keypair)(nil)
	_ ports.TransactionSigner = (*Keypair)(nil)
)

func NewKeypair(secrets ports.SecretStore, trust ports.TrustStore, approver ports.ConnectionApprover, secretRef string) *Keypair {
	if strings.TrimSpace(secretRef) == "" {
		secretRef = DefaultSecretRef
	}

	return &Keypair{
		secrets:   secrets,
		trust:     trust,
		approver:  approver,
		secretRef: secretRef,
	}
}

func (k *Keypair) SecretRef() string {
	return k.secretRef
}

// Available is false only when no key is stored. A stored key that fails to
// load still counts, so Connect can report the real error.
func (k *Keypair) Available(ctx context.Context) bool {
	_, err := k.load(ctx)
	return !errors.Is(err, domain.ErrCapabilityMissing)
}

func (k *Keypair) Connect(ctx context.Context, opts ports.ConnectOptions) (domain.Identity, error) {
	key, err := k.load(ctx)
	if err != nil {
		return "", err
	}
	identity := domain.Identity(key.PublicKey().String())
	logger := logging.FromContext(logging.WithIdentity(ctx, identity.Short()))

	trusted, err := k.trust.IsTrusted(ctx, identity)
	if err != nil {
		return "", fmt.Errorf("check wallet trust: %w", err)
	}

	if !trusted {
		if opts.OnlyIfTrusted {
			return "", domain.ErrNotTrusted
		}
		if k.approver == nil {
			return "", fmt.Errorf("%w: no approver configured", domain.ErrAuthRejected)
		}

		approved, err := k.approver.ApproveConnection(ctx, identity)
		if err != nil {
			return "", fmt.Errorf("approve connection: %w", err)
		}
		if !approved {
			logger.Info().Msg("connection declined")
			return "", domain.ErrAuthRejected
		}
		if err := k.trust.Trust(ctx, identity); err != nil {
			return "", fmt.Errorf("record wallet trust: %w", err)
		}
		logger.Info().Msg("wallet trusted")
	}

	k.mu.Lock()
	k.connected = key
	k.mu.Unlock()

	return identity, nil
}

func (k *Keypair) Identity() (domain.Identity, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.connected == nil {
		return "", domain.ErrNotConnected
	}
	return domain.Identity(k.connected.PublicKey().String()), nil
}

func (k *Keypair) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k.mu.Lock()
	key := k.connected
	k.mu.Unlock()

	if key == nil {
		return nil, domain.ErrNotConnected
	}

	signature, err := key.Sign(message)
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}
	return signature[:], nil
}

// Generate creates a new keypair and stores it. An existing key is kept unless overwrite is set.
func (k *Keypair) Generate(ctx context.Context, overwrite bool) (domain.Identity, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return "", fmt.Errorf("generate keypair: %w", err)
	}

	return k.store(ctx, key, overwrite)
}

// Import stores a private key given either as base58 or as a solana-keygen JSON file path.
func (k *Keypair) Import(ctx context.Context, source string, overwrite bool) (domain.Identity, error) {
	key, err := ParsePrivateKey(source)
	if err != nil {
		return "", err
	}

	return k.store(ctx, key, overwrite)
}

// Show returns the stored wallet's public identity without connecting.
func (k *Keypair) Show(ctx context.Context) (domain.Identity, error) {
	key, err := k.load(ctx)
	if err != nil {
		return "", err
	}
	return domain.Identity(key.PublicKey().String()), nil
}

// Forget deletes the stored key and revokes trust for its identity.
func (k *Keypair) Forget(ctx context.Context) (domain.Identity, error) {
	key, err := k.load(ctx)
	if err != nil {
		return "", err
	}
	identity := domain.Identity(key.PublicKey().String())

	var errs []error
	if err := k.secrets.Delete(ctx, k.secretRef); err != nil {
		errs = append(errs, fmt.Errorf("delete wallet secret: %w", err))
	}
	if err := k.trust.Revoke(ctx, identity); err != nil {
		errs = append(errs, fmt.Errorf("revoke wallet trust: %w", err))
	}

	k.mu.Lock()
	k.connected = nil
	k.mu.Unlock()

	return identity, errors.Join(errs...)
}

func (k *Keypair) store(ctx context.Context, key solana.PrivateKey, overwrite bool) (domain.Identity, error) {
	if !overwrite {
		if existing, err := k.load(ctx); err == nil {
			return "", fmt.Errorf("%w: wallet %s already stored", ErrWalletExists, existing.PublicKey())
		} else if !errors.Is(err, domain.ErrCapabilityMissing) {
			return "", err
		}
	}

	if err := k.secrets.Put(ctx, k.secretRef, key.String()); err != nil {
		return "", fmt.Errorf("store wallet secret: %w", err)
	}

	return domain.Identity(key.PublicKey().String()), nil
}

func (k *Keypair) load(ctx context.Context) (solana.PrivateKey, error) {
	if k.secrets == nil {
		return nil, domain.ErrCapabilityMissing
	}

	raw, err := k.secrets.Get(ctx, k.secretRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return nil, domain.ErrCapabilityMissing
		}
		return nil, fmt.Errorf("read wallet secret: %w", err)
	}

	key, err := solana.PrivateKeyFromBase58(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: stored wallet key is not valid base58", ErrInvalidKey)
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	return key, nil
}
