package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/ports"
	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const (
	// listAccountSpace is the space the program allocates for BaseAccount.
	listAccountSpace = 9000

	defaultConfirmTimeout = 60 * time.Second
	defaultPollInterval   = 500 * time.Millisecond
)

type WriterOptions struct {
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// Writer submits list transactions signed by the connected wallet.
type Writer struct {
	client *Client
	signer ports.TransactionSigner
	opts   WriterOptions
}

var (
	_ ports.ListWriter      = (*Writer)(nil)
	_ ports.ListInitializer = (*Writer)(nil)
)

func NewWriter(client *Client, signer ports.TransactionSigner, opts WriterOptions) *Writer {
	if opts.ConfirmTimeout <= 0 {
		opts.ConfirmTimeout = defaultConfirmTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}

	return &Writer{client: client, signer: signer, opts: opts}
}

func (w *Writer) AppendEntry(ctx context.Context, address domain.ListAddress, link domain.MediaLink) (string, error) {
	listAccount, err := solana.PublicKeyFromBase58(address.String())
	if err != nil {
		return "", fmt.Errorf("parse list address %q: %w", address, err)
	}
	user, err := w.signerKey()
	if err != nil {
		return "", err
	}

	data, err := encodeInstruction(addGifInstruction, string(link))
	if err != nil {
		return "", err
	}

	ix := solana.NewInstruction(w.client.programID, solana.AccountMetaSlice{
		solana.Meta(listAccount).WRITE(),
		solana.Meta(user).WRITE().SIGNER(),
	}, data)

	signature, err := w.submit(ctx, user, []solana.Instruction{ix}, nil)
	if err != nil {
		return "", fmt.Errorf("add gif: %w", err)
	}

	return signature.String(), nil
}

// InitializeList creates a new list account under a freshly generated keypair and returns its address.
func (w *Writer) InitializeList(ctx context.Context) (domain.ListAddress, string, error) {
	user, err := w.signerKey()
	if err != nil {
		return "", "", err
	}

	listKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return "", "", fmt.Errorf("generate list account keypair: %w", err)
	}
	listAccount := listKey.PublicKey()

	data, err := encodeInstruction(initListInstruction)
	if err != nil {
		return "", "", err
	}

	ix := solana.NewInstruction(w.client.programID, solana.AccountMetaSlice{
		solana.Meta(listAccount).WRITE().SIGNER(),
		solana.Meta(user).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}, data)

	signature, err := w.submit(ctx, user, []solana.Instruction{ix}, map[solana.PublicKey]solana.PrivateKey{
		listAccount: listKey,
	})
	if err != nil {
		return "", "", fmt.Errorf("initialize list account: %w", err)
	}

	return domain.ListAddress(listAccount.String()), signature.String(), nil
}

func (w *Writer) signerKey() (solana.PublicKey, error) {
	if w.signer == nil {
		return solana.PublicKey{}, domain.ErrNotConnected
	}

	identity, err := w.signer.Identity()
	if err != nil {
		return solana.PublicKey{}, err
	}

	key, err := solana.PublicKeyFromBase58(identity.String())
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("parse wallet identity: %w", err)
	}

	return key, nil
}

// submit builds, signs, sends and confirms a transaction paid by payer. Extra signers are local keys.
func (w *Writer) submit(ctx context.Context, payer solana.PublicKey, instructions []solana.Instruction, extra map[solana.PublicKey]solana.PrivateKey) (solana.Signature, error) {
	recent, err := w.client.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("get latest blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(instructions, recent.Value.Blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return solana.Signature{}, fmt.Errorf("build transaction: %w", err)
	}

	if err := w.sign(ctx, tx, payer, extra); err != nil {
		return solana.Signature{}, err
	}

	signature, err := w.client.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: w.client.commitment,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("send transaction: %w", err)
	}

	if err := w.waitForConfirmation(ctx, signature); err != nil {
		return signature, err
	}

	return signature, nil
}

func (w *Writer) sign(ctx context.Context, tx *solana.Transaction, payer solana.PublicKey, extra map[solana.PublicKey]solana.PrivateKey) error {
	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode transaction message: %w", err)
	}

	required := int(tx.Message.Header.NumRequiredSignatures)
	if required > len(tx.Message.AccountKeys) {
		return errors.New("transaction header requires more signers than account keys")
	}

	signatures := make([]solana.Signature, 0, required)
	for _, key := range tx.Message.AccountKeys[:required] {
		if key.Equals(payer) {
			raw, err := w.signer.SignMessage(ctx, message)
			if err != nil {
				return fmt.Errorf("wallet sign transaction: %w", err)
			}
			if len(raw) != len(solana.Signature{}) {
				return fmt.Errorf("wallet returned a %d-byte signature", len(raw))
			}
			signatures = append(signatures, solana.SignatureFromBytes(raw))
			continue
		}

		local, ok := extra[key]
		if !ok {
			return fmt.Errorf("no signer for account %s", key)
		}
		signature, err := local.Sign(message)
		if err != nil {
			return fmt.Errorf("sign with %s: %w", key, err)
		}
		signatures = append(signatures, signature)
	}

	tx.Signatures = signatures
	return nil
}
