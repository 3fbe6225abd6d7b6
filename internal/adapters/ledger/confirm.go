package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

var (
	ErrConfirmTimeout    = errors.New("timed out waiting for transaction confirmation")
	ErrTransactionFailed = errors.New("transaction failed")
)

func commitmentRank(status rpc.ConfirmationStatusType) int {
	switch status {
	case rpc.ConfirmationStatusProcessed:
		return 1
	case rpc.ConfirmationStatusConfirmed:
		return 2
	case rpc.ConfirmationStatusFinalized:
		return 3
	default:
		return 0
	}
}

func requiredRank(commitment rpc.CommitmentType) int {
	switch commitment {
	case rpc.CommitmentFinalized:
		return 3
	case rpc.CommitmentConfirmed:
		return 2
	default:
		return 1
	}
}

// waitForConfirmation polls signature statuses until the client's commitment is reached.
func (w *Writer) waitForConfirmation(ctx context.Context, signature solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, w.opts.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	want := requiredRank(w.client.commitment)
	for {
		out, err := w.client.rpc.GetSignatureStatuses(ctx, true, signature)
		if err == nil && out != nil && len(out.Value) > 0 && out.Value[0] != nil {
			status := out.Value[0]
			if status.Err != nil {
				return fmt.Errorf("%w: %s: %v", ErrTransactionFailed, signature, status.Err)
			}
			if commitmentRank(status.ConfirmationStatus) >= want {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: %s", ErrConfirmTimeout, signature)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
