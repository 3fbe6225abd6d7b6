package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/gifportal/internal/adapters/ledger"
	"github.com/bnema/gifportal/internal/adapters/wallet"
	"github.com/spf13/viper"
)

const (
	DirName    = ".gifportal"
	fileName   = "config"
	fileType   = "toml"
	envPrefix  = "PORTAL"
	configMode = 0o600
	dirMode    = 0o700

	KeyEndpoint       = "network.endpoint"
	KeyCommitment     = "network.commitment"
	KeyProgramIDL     = "program.idl"
	KeyProgramID      = "program.id"
	KeyListAddress    = "list.address"
	KeyWriteThrough   = "list.write_through"
	KeyConfirmTimeout = "list.confirm_timeout"
	KeySecretRef      = "wallet.secret_ref"
	KeySecretBackend  = "wallet.secret_backend"
	KeyTrustPath      = "trust.path"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
)

const (
	SecretBackendAuto = "auto"
	SecretBackendPass = "pass"
	SecretBackendFile = "file"
)

type Config struct {
	Network NetworkConfig `mapstructure:"network"`
	Program ProgramConfig `mapstructure:"program"`
	List    ListConfig    `mapstructure:"list"`
	Wallet  WalletConfig  `mapstructure:"wallet"`
	Trust   TrustConfig   `mapstructure:"trust"`
	Log     LogConfig     `mapstructure:"log"`
}

type NetworkConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	Commitment string `mapstructure:"commitment"`
}

type ProgramConfig struct {
	IDL string `mapstructure:"idl"`
	// ID overrides the address declared in the IDL metadata.
	ID string `mapstructure:"id"`
}

type ListConfig struct {
	Address        string        `mapstructure:"address"`
	WriteThrough   bool          `mapstructure:"write_through"`
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
}

type WalletConfig struct {
	SecretRef string `mapstructure:"secret_ref"`
	// SecretBackend is auto (pass, then file), pass or file.
	SecretBackend string `mapstructure:"secret_backend"`
}

type TrustConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Dir returns ~/.gifportal for the given home directory.
func Dir(home string) string {
	return filepath.Join(home, DirName)
}

// New builds a viper instance rooted at dir with defaults and PORTAL_ env overrides.
func New(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, dir)
	return v
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault(KeyEndpoint, ledger.DefaultEndpoint)
	v.SetDefault(KeyCommitment, "processed")
	v.SetDefault(KeyProgramIDL, filepath.Join(dir, "idl.json"))
	v.SetDefault(KeyProgramID, "")
	v.SetDefault(KeyListAddress, "")
	v.SetDefault(KeyWriteThrough, true)
	v.SetDefault(KeyConfirmTimeout, 60*time.Second)
	v.SetDefault(KeySecretRef, wallet.DefaultSecretRef)
	v.SetDefault(KeySecretBackend, SecretBackendAuto)
	v.SetDefault(KeyTrustPath, filepath.Join(dir, "trusted.toml"))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads config.toml from dir when present. A missing file leaves defaults and env in place.
func Load(dir string) (*Config, *viper.Viper, error) {
	v := New(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("read config file %s: %w", filepath.Join(dir, fileName+"."+fileType), err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, v, nil
}

func validate(cfg *Config) error {
	if _, err := ledger.ParseCommitment(cfg.Network.Commitment); err != nil {
		return err
	}
	switch cfg.Wallet.SecretBackend {
	case SecretBackendAuto, SecretBackendPass, SecretBackendFile:
	default:
		return fmt.Errorf("%s must be %s, %s or %s, got %q", KeySecretBackend, SecretBackendAuto, SecretBackendPass, SecretBackendFile, cfg.Wallet.SecretBackend)
	}
	if cfg.List.ConfirmTimeout < 0 {
		return fmt.Errorf("%s must not be negative", KeyConfirmTimeout)
	}
	return nil
}

// Save writes key=value into dir/config.toml, keeping the keys already stored there.
func Save(dir, key string, value interface{}) error {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(dir, fileName+"."+fileType)
	file := viper.New()
	file.SetConfigFile(path)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	if err := os.Chmod(path, configMode); err != nil {
		return fmt.Errorf("chmod config file %s: %w", path, err)
	}

	return nil
}
