package ports

import (
	"context"

	"github.com/bnema/gifportal/internal/domain"
)

type ListReader interface {
	FetchList(ctx context.Context, address domain.ListAddress) (domain.RemoteList, error)
}

// ListWriter appends one link to the list account and returns the confirmed transaction signature.
type ListWriter interface {
	AppendEntry(ctx context.Context, address domain.ListAddress, link domain.MediaLink) (string, error)
}

type ListInitializer interface {
	InitializeList(ctx context.Context) (domain.ListAddress, string, error)
}
