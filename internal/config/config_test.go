// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validConfigJSON = `{
    "cluster": "mainnet-beta",
    "rpc_endpoints": {
        "devnet": "https://devnet.example.com",
        "mainnet-beta": "https://mainnet.example.com"
    },
    "wallet_address": "11111111111111111111111111111111",
    "balance_interval_ms": 15000,
    "airdrop_sol": 2,
    "debug_logging": true,
    "log_buffer_size": 100
}`

var validConfigYAML = `
cluster: testnet
balance_interval_ms: 5000
commitment: finalized
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultCluster, cfg.Cluster)
	assert.Equal(t, 30*time.Second, cfg.BalanceInterval())
	assert.Equal(t, 3*time.Second, cfg.ProbeTimeout())
	assert.Equal(t, uint64(1_000_000_000), cfg.AirdropLamports())
	assert.Equal(t, DefaultLogBufferSize, cfg.LogBufferSize)
	assert.Equal(t, rpc.CommitmentConfirmed, cfg.CommitmentLevel())
	assert.Empty(t, cfg.WalletAddress)
}

func TestAirdropLamportsRounds(t *testing.T) {
	for sol, want := range map[float64]uint64{
		0.29:  290_000_000,
		0.1:   100_000_000,
		2.5:   2_500_000_000,
		1e-9:  1,
		0.001: 1_000_000,
	} {
		cfg := &Config{AirdropSOL: sol}
		assert.Equal(t, want, cfg.AirdropLamports(), "airdrop_sol=%v", sol)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "Valid JSON config",
			file:    "config.json",
			content: validConfigJSON,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mainnet-beta", cfg.Cluster)
				assert.Equal(t, "https://devnet.example.com", cfg.RPCEndpoints["devnet"])
				assert.Equal(t, 15*time.Second, cfg.BalanceInterval())
				assert.Equal(t, uint64(2_000_000_000), cfg.AirdropLamports())
				assert.True(t, cfg.DebugLogging)
				assert.Equal(t, 100, cfg.LogBufferSize)
			},
		},
		{
			name:    "Valid YAML config",
			file:    "config.yaml",
			content: validConfigYAML,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "testnet", cfg.Cluster)
				assert.Equal(t, 5*time.Second, cfg.BalanceInterval())
				assert.Equal(t, rpc.CommitmentFinalized, cfg.CommitmentLevel())
			},
		},
		{
			name:    "Invalid interval",
			file:    "config.json",
			content: `{"balance_interval_ms": -1}`,
			wantErr: true,
		},
		{
			name:    "Unknown commitment",
			file:    "config.json",
			content: `{"commitment": "recent"}`,
			wantErr: true,
		},
		{
			name:    "Invalid endpoint protocol",
			file:    "config.json",
			content: `{"rpc_endpoints": {"devnet": "ftp://devnet.example.com"}}`,
			wantErr: true,
		},
		{
			name:    "Address and keypair together",
			file:    "config.json",
			content: `{"wallet_address": "11111111111111111111111111111111", "keypair_path": "id.json"}`,
			wantErr: true,
		},
		{
			name:    "Malformed JSON",
			file:    "config.json",
			content: `{"cluster": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("SOLCRUSHER_CLUSTER", "localnet")
	t.Setenv("SOLCRUSHER_BALANCE_INTERVAL_MS", "1000")
	t.Setenv("SOLCRUSHER_RPC_ENDPOINTS_LIST", "devnet=https://a.example.com, testnet=https://b.example.com")

	cfg, err := LoadConfig(writeConfig(t, "config.json", validConfigJSON))
	require.NoError(t, err)

	assert.Equal(t, "localnet", cfg.Cluster)
	assert.Equal(t, time.Second, cfg.BalanceInterval())
	assert.Equal(t, "https://a.example.com", cfg.RPCEndpoints["devnet"])
	assert.Equal(t, "https://b.example.com", cfg.RPCEndpoints["testnet"])
	assert.Equal(t, "https://mainnet.example.com", cfg.RPCEndpoints["mainnet-beta"])
}

func TestLoadConfigBadEnvironmentEndpoints(t *testing.T) {
	t.Setenv("SOLCRUSHER_RPC_ENDPOINTS_LIST", "no-equals-sign")
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	// t.Setenv restores the variable when the test ends
	t.Setenv("SOLCRUSHER_CLUSTER", "")
	require.NoError(t, os.Unsetenv("SOLCRUSHER_CLUSTER"))

	path := writeConfig(t, ".env", "SOLCRUSHER_CLUSTER=testnet\n")
	require.NoError(t, LoadDotEnv(path))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.Cluster)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, LoadDotEnv(""))
}
