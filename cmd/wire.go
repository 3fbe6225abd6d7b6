package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/gifportal/internal/adapters/ledger"
	"github.com/bnema/gifportal/internal/adapters/render/gallery"
	tomlrepo "github.com/bnema/gifportal/internal/adapters/repo/toml"
	chainstore "github.com/bnema/gifportal/internal/adapters/secrets/chain"
	filestore "github.com/bnema/gifportal/internal/adapters/secrets/file"
	passstore "github.com/bnema/gifportal/internal/adapters/secrets/pass"
	"github.com/bnema/gifportal/internal/adapters/wallet"
	"github.com/bnema/gifportal/internal/application"
	"github.com/bnema/gifportal/internal/config"
	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/logging"
	"github.com/bnema/gifportal/internal/ports"
	solana "github.com/gagliardetto/solana-go"
)

const logFileName = "portal.log"

var errProgramNotConfigured = errors.New("program id not configured: set program.id or provide the program idl.json")

type app struct {
	configDir    string
	cfg          *config.Config
	secretStore  ports.SecretStore
	trust        *tomlrepo.TrustRepository
	listRenderer func(domain.ListView, gallery.RenderOptions) (string, error)
}

// session bundles everything one command needs to talk to the list account.
type session struct {
	portal *application.Portal
	wallet *wallet.Keypair
	writer *ledger.Writer
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := config.Dir(homeDir)

	cfg, v, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	secretStore, err := newSecretStore(cfg.Wallet.SecretBackend, filepath.Join(configDir, "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	trust, err := tomlrepo.NewTrustRepository(v, ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("wire trust repository: %w", err)
	}

	return &app{
		configDir:    configDir,
		cfg:          cfg,
		secretStore:  secretStore,
		trust:        trust,
		listRenderer: gallery.Render,
	}, nil
}

func newSecretStore(backend, fileRoot string) (ports.SecretStore, error) {
	switch backend {
	case config.SecretBackendFile:
		return filestore.NewStore(fileRoot), nil
	case config.SecretBackendPass:
		return passstore.NewStore(), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(fileRoot)
	}
}

// logContext attaches a logger writing to w, or to the portal log file when w is nil.
func (a *app) logContext(ctx context.Context, w io.Writer) (context.Context, func() error, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(a.cfg.Log.Level)
	logCfg.Format = a.cfg.Log.Format

	if w != nil {
		logCfg.Output = w
		return logging.WithContext(ctx, logging.New(logCfg)), func() error { return nil }, nil
	}

	logger, closeFn, err := logging.NewFile(logCfg, filepath.Join(a.configDir, logFileName))
	if err != nil {
		return ctx, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.WithContext(ctx, logger), closeFn, nil
}

func (a *app) keypair(approver ports.ConnectionApprover) *wallet.Keypair {
	return wallet.NewKeypair(a.secretStore, a.trust, approver, a.cfg.Wallet.SecretRef)
}

func (a *app) programID() (solana.PublicKey, error) {
	if a.cfg.Program.ID != "" {
		programID, err := solana.PublicKeyFromBase58(a.cfg.Program.ID)
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("parse %s: %w", config.KeyProgramID, err)
		}
		return programID, nil
	}

	idl, err := ledger.LoadIDL(a.cfg.Program.IDL)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return solana.PublicKey{}, errProgramNotConfigured
		}
		return solana.PublicKey{}, err
	}

	return idl.ProgramID()
}

func (a *app) ledgerClient() (*ledger.Client, error) {
	programID, err := a.programID()
	if err != nil {
		return nil, err
	}

	commitment, err := ledger.ParseCommitment(a.cfg.Network.Commitment)
	if err != nil {
		return nil, err
	}

	return ledger.NewClient(ledger.Options{
		Endpoint:   a.cfg.Network.Endpoint,
		Commitment: commitment,
		ProgramID:  programID,
	})
}

func (a *app) newSession(approver ports.ConnectionApprover) (*session, error) {
	client, err := a.ledgerClient()
	if err != nil {
		return nil, err
	}

	keypair := a.keypair(approver)
	writer := ledger.NewWriter(client, keypair, ledger.WriterOptions{ConfirmTimeout: a.cfg.List.ConfirmTimeout})

	var opts []application.ListSynchronizerOption
	if a.cfg.List.WriteThrough {
		opts = append(opts, application.WithListWriter(writer))
	}

	lists := application.NewListSynchronizer(client, domain.ListAddress(a.cfg.List.Address), opts...)
	portal := application.NewPortal(application.NewWalletSession(keypair), lists)

	return &session{portal: portal, wallet: keypair, writer: writer}, nil
}

// connect probes for existing trust first, then falls back to an interactive connect.
func (s *session) connect(ctx context.Context) (domain.Identity, error) {
	s.portal.Start(ctx)
	if identity, ok := s.portal.Session().Identity(); ok {
		return identity, nil
	}

	identity, err := s.portal.Session().Connect(logging.WithComponent(ctx, "wallet_session"))
	if err != nil {
		return "", walletError(err)
	}
	return identity, nil
}

// connectTrusted succeeds only when the wallet already trusts this app.
func (s *session) connectTrusted(ctx context.Context) (domain.Identity, error) {
	s.portal.Start(ctx)
	if identity, ok := s.portal.Session().Identity(); ok {
		return identity, nil
	}

	if _, err := s.wallet.Show(ctx); err != nil {
		return "", walletError(err)
	}
	return "", fmt.Errorf("%w: run `portal connect` first", domain.ErrNotTrusted)
}

func walletError(err error) error {
	if errors.Is(err, domain.ErrCapabilityMissing) {
		return fmt.Errorf("%w: create one with `portal wallet new` or import one with `portal wallet import`", err)
	}
	return err
}
