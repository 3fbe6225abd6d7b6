package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/gifportal/internal/domain"
	"github.com/bnema/gifportal/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	TrustPathKey    = "trust.path"
	trustFileMode   = 0o600
	trustDirMode    = 0o700
	trustConfigDir  = ".gifportal"
	trustConfigFile = "trusted.toml"
	tempFilePattern = ".trusted-*.toml.tmp"
)

// TrustRepository records which wallet identities approved a connection to this app.
type TrustRepository struct {
	path  string
	clock ports.Clock
	mu    *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.TrustStore = (*TrustRepository)(nil)

// NewTrustRepository resolves the trust file from cfg's trust.path, defaulting to ~/.gifportal/trusted.toml.
func NewTrustRepository(cfg *viper.Viper, clock ports.Clock) (*TrustRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	path := cfg.GetString(TrustPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, trustConfigDir, trustConfigFile)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve trust path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &TrustRepository{path: absPath, clock: clock, mu: lockForPath(absPath)}, nil
}

func (r *TrustRepository) Path() string {
	return r.path
}

func (r *TrustRepository) IsTrusted(ctx context.Context, identity domain.Identity) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return false, err
	}

	for _, wallet := range file.Wallets {
		if wallet.PublicKey == string(identity) {
			return true, nil
		}
	}

	return false, nil
}

func (r *TrustRepository) Trust(ctx context.Context, identity domain.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if identity == "" {
		return errors.New("trusted identity is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	entry := walletSchema{
		PublicKey: string(identity),
		TrustedAt: r.clock.Now().UTC().Format(time.RFC3339),
	}

	updated := false
	for i := range file.Wallets {
		if file.Wallets[i].PublicKey == entry.PublicKey {
			file.Wallets[i] = entry
			updated = true
			break
		}
	}
	if !updated {
		file.Wallets = append(file.Wallets, entry)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *TrustRepository) Revoke(ctx context.Context, identity domain.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Wallets[:0]
	for _, wallet := range file.Wallets {
		if wallet.PublicKey != string(identity) {
			kept = append(kept, wallet)
		}
	}
	if len(kept) == len(file.Wallets) {
		return nil
	}
	file.Wallets = kept

	return r.writeSchema(file)
}

func (r *TrustRepository) List(ctx context.Context) ([]domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	identities := make([]domain.Identity, 0, len(file.Wallets))
	for _, wallet := range file.Wallets {
		identities = append(identities, domain.Identity(wallet.PublicKey))
	}

	return identities, nil
}

func (r *TrustRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read trust file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode trust file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *TrustRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), trustDirMode); err != nil {
		return fmt.Errorf("create trust directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode trust file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp trust file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp trust file: %w", err)
	}

	if err := tempFile.Chmod(trustFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp trust file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp trust file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace trust file: %w", err)
	}
	cleanup = false

	return nil
}
