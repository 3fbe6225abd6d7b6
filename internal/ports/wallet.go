package ports

import (
	"context"

	"github.com/bnema/gifportal/internal/domain"
)

type ConnectOptions struct {
	// OnlyIfTrusted forbids prompting the user; the connect fails unless trust was granted earlier.
	OnlyIfTrusted bool
}

// WalletProvider is the wallet capability the session drives.
type WalletProvider interface {
	// Available reports whether a wallet exists at all, independently of trust.
	Available(ctx context.Context) bool
	Connect(ctx context.Context, opts ConnectOptions) (domain.Identity, error)
}

type TransactionSigner interface {
	Identity() (domain.Identity, error)
	SignMessage(ctx context.Context, message []byte) ([]byte, error)
}

type ConnectionApprover interface {
	ApproveConnection(ctx context.Context, identity domain.Identity) (bool, error)
}

type TrustStore interface {
	IsTrusted(ctx context.Context, identity domain.Identity) (bool, error)
	Trust(ctx context.Context, identity domain.Identity) error
	Revoke(ctx context.Context, identity domain.Identity) error
	List(ctx context.Context) ([]domain.Identity, error)
}
