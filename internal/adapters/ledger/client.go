package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/ports"
	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const DefaultEndpoint = rpc.DevNet_RPC

var ErrAccountNotFound = errors.New("list account not found")

// ParseCommitment maps a config value to an RPC commitment level.
func ParseCommitment(raw string) (rpc.CommitmentType, error) {
	switch rpc.CommitmentType(strings.ToLower(strings.TrimSpace(raw))) {
	case "", rpc.CommitmentProcessed:
		return rpc.CommitmentProcessed, nil
	case rpc.CommitmentConfirmed:
		return rpc.CommitmentConfirmed, nil
	case rpc.CommitmentFinalized:
		return rpc.CommitmentFinalized, nil
	default:
		return "", fmt.Errorf("unsupported commitment %q (want processed, confirmed or finalized)", raw)
	}
}

type Options struct {
	Endpoint   string
	Commitment rpc.CommitmentType
	ProgramID  solana.PublicKey
}

// Client reads the list account through a Solana JSON-RPC endpoint.
type Client struct {
	rpc        *rpc.Client
	commitment rpc.CommitmentType
	programID  solana.PublicKey
}

var _ ports.ListReader = (*Client)(nil)

func NewClient(opts Options) (*Client, error) {
	if opts.ProgramID.IsZero() {
		return nil, errors.New("program id is required")
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	commitment := opts.Commitment
	if commitment == "" {
		commitment = rpc.CommitmentProcessed
	}

	return &Client{
		rpc:        rpc.New(endpoint),
		commitment: commitment,
		programID:  opts.ProgramID,
	}, nil
}

func (c *Client) ProgramID() solana.PublicKey {
	return c.programID
}

func (c *Client) Commitment() rpc.CommitmentType {
	return c.commitment
}

func (c *Client) FetchList(ctx context.Context, address domain.ListAddress) (domain.RemoteList, error) {
	account, err := solana.PublicKeyFromBase58(address.String())
	if err != nil {
		return domain.RemoteList{}, fmt.Errorf("parse list address %q: %w", address, err)
	}

	out, err := c.rpc.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: c.commitment,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return domain.RemoteList{}, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
		}
		return domain.RemoteList{}, fmt.Errorf("get list account: %w", err)
	}
	if out == nil || out.Value == nil {
		return domain.RemoteList{}, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}
	if !out.Value.Owner.Equals(c.programID) {
		return domain.RemoteList{}, fmt.Errorf("list account %s is owned by %s, not program %s", address, out.Value.Owner, c.programID)
	}

	decoded, err := decodeBaseAccount(out.Value.Data.GetBinary())
	if err != nil {
		return domain.RemoteList{}, fmt.Errorf("decode list account %s: %w", address, err)
	}

	items := make([]domain.RemoteItem, 0, len(decoded.GifList))
	for _, item := range decoded.GifList {
		items = append(items, domain.RemoteItem{
			Link:      domain.MediaLink(item.GifLink),
			Submitter: domain.Identity(item.UserAddress.String()),
		})
	}

	return domain.RemoteList{
		Address:    address,
		TotalCount: decoded.TotalGifs,
		Items:      items,
	}, nil
}
