// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SOLCRUSHER_CLUSTER.
const EnvPrefix = "SOLCRUSHER"

const (
	DefaultCluster           = "devnet"
	DefaultBalanceIntervalMS = 30000
	DefaultAirdropSOL        = 1.0
	DefaultLogBufferSize     = 500
	DefaultProbeTimeoutMS    = 3000
	DefaultCommitment        = string(rpc.CommitmentConfirmed)
)

// Config holds application settings.
type Config struct {
	Cluster           string            `mapstructure:"cluster"`
	RPCEndpoints      map[string]string `mapstructure:"rpc_endpoints"`
	WalletAddress     string            `mapstructure:"wallet_address"`
	KeypairPath       string            `mapstructure:"keypair_path"`
	BalanceIntervalMS int               `mapstructure:"balance_interval_ms"`
	AirdropSOL        float64           `mapstructure:"airdrop_sol"`
	DebugLogging      bool              `mapstructure:"debug_logging"`
	LogBufferSize     int               `mapstructure:"log_buffer_size"`
	LogFile           string            `mapstructure:"log_file"`
	ProbeTimeoutMS    int               `mapstructure:"probe_timeout_ms"`
	Commitment        string            `mapstructure:"commitment"`
}

// BalanceInterval returns the poll period as a Duration.
func (c *Config) BalanceInterval() time.Duration {
	return time.Duration(c.BalanceIntervalMS) * time.Millisecond
}

// ProbeTimeout returns the per-cluster ping timeout.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMS) * time.Millisecond
}

// CommitmentLevel returns the commitment used for balance reads.
func (c *Config) CommitmentLevel() rpc.CommitmentType {
	return rpc.CommitmentType(c.Commitment)
}

// AirdropLamports converts AirdropSOL to lamports, rounded to the nearest one.
func (c *Config) AirdropLamports() uint64 {
	lamports := decimal.NewFromFloat(c.AirdropSOL).
		Mul(decimal.NewFromInt(int64(solana.LAMPORTS_PER_SOL))).
		Round(0)
	return lamports.BigInt().Uint64()
}

// LoadDotEnv exports the variables of a .env file into the process
// environment. A missing file is not an error; variables already set win.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file error: %w", err)
	}
	return nil
}

// LoadConfig reads the optional config file at path, then applies
// SOLCRUSHER_* environment overrides. An empty path uses defaults only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"cluster":             DefaultCluster,
		"wallet_address":      "",
		"keypair_path":        "",
		"balance_interval_ms": DefaultBalanceIntervalMS,
		"airdrop_sol":         DefaultAirdropSOL,
		"debug_logging":       false,
		"log_buffer_size":     DefaultLogBufferSize,
		"log_file":            "",
		"probe_timeout_ms":    DefaultProbeTimeoutMS,
		"commitment":          DefaultCommitment,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if err := loadEnvironmentVariables(v, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Cluster) == "" {
		return errors.New("cluster must not be empty")
	}
	if c.BalanceIntervalMS <= 0 {
		return errors.New("invalid balance_interval_ms")
	}
	if c.AirdropSOL <= 0 {
		return errors.New("invalid airdrop_sol")
	}
	if c.LogBufferSize <= 0 {
		return errors.New("invalid log_buffer_size")
	}
	if c.ProbeTimeoutMS <= 0 {
		return errors.New("invalid probe_timeout_ms")
	}
	switch rpc.CommitmentType(c.Commitment) {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		return fmt.Errorf("invalid commitment: %q", c.Commitment)
	}
	if c.WalletAddress != "" && c.KeypairPath != "" {
		return errors.New("wallet_address and keypair_path are mutually exclusive")
	}
	for name, endpoint := range c.RPCEndpoints {
		if err := validateURL(endpoint, "http"); err != nil {
			return fmt.Errorf("invalid rpc endpoint for %s: %w", name, err)
		}
	}
	return nil
}

func validateURL(rawURL string, protocol string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if !strings.HasPrefix(parsed.Scheme, protocol) || parsed.Host == "" {
		return errors.New("invalid URL protocol")
	}
	return nil
}

// loadEnvironmentVariables applies overrides viper cannot map on its own:
// SOLCRUSHER_RPC_ENDPOINTS_LIST="devnet=https://...,mainnet-beta=https://...".
func loadEnvironmentVariables(v *viper.Viper, cfg *Config) error {
	envEndpoints := v.GetString("RPC_ENDPOINTS_LIST")
	if envEndpoints == "" {
		return nil
	}
	if cfg.RPCEndpoints == nil {
		cfg.RPCEndpoints = make(map[string]string)
	}
	for _, pair := range strings.Split(envEndpoints, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, endpoint, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid %s_RPC_ENDPOINTS_LIST entry: %q", EnvPrefix, pair)
		}
		cfg.RPCEndpoints[strings.TrimSpace(name)] = strings.TrimSpace(endpoint)
	}
	return nil
}
