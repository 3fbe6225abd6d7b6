package ports

import "context"

// SecretStore holds wallet key material. Get returns an error wrapping domain.ErrSecretNotFound
// when the key has never been stored.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
