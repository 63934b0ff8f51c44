package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

// clearEnv blanks every key so the host environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(strings.ToUpper(key), "")
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPC_ENDPOINT", "https://api.mainnet-beta.solana.com")
	t.Setenv("TOKEN_ADDRESS", testMint)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.mainnet-beta.solana.com", cfg.RPCEndpoint)
	assert.Equal(t, testMint, cfg.TokenAddress)
	assert.Equal(t, DefaultPumpProgram, cfg.PumpProgram)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.Equal(t, DefaultCycleTimeout, cfg.CycleTimeout)
	assert.Equal(t, DefaultPriceFeedURL, cfg.PriceFeedURL)
	assert.Equal(t, DefaultPriceFeedTimeout, cfg.PriceFeedTimeout)
	assert.False(t, cfg.DebugLogging)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPC_ENDPOINT", "http://localhost:8899")
	t.Setenv("TOKEN_ADDRESS", testMint)
	t.Setenv("POLL_INTERVAL", "3s")
	t.Setenv("CYCLE_TIMEOUT", "1500ms")
	t.Setenv("DEBUG_LOGGING", "true")
	t.Setenv("LOG_FILE", "/tmp/monitor.log")
	t.Setenv("METRICS_ADDR", ":9102")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, 1500*time.Millisecond, cfg.CycleTimeout)
	assert.True(t, cfg.DebugLogging)
	assert.Equal(t, "/tmp/monitor.log", cfg.LogFile)
	assert.Equal(t, ":9102", cfg.MetricsAddr)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "RPC_ENDPOINT=https://rpc.example.com\nTOKEN_ADDRESS="+testMint+"\nPOLL_INTERVAL=30s\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.example.com", cfg.RPCEndpoint)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
}

func TestLoadConfig_EnvironmentWinsOverDotEnv(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "RPC_ENDPOINT=https://rpc.example.com\nTOKEN_ADDRESS="+testMint+"\n")
	t.Setenv("RPC_ENDPOINT", "https://override.example.com")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com", cfg.RPCEndpoint)
}

func TestLoadConfig_MissingDotEnvIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPC_ENDPOINT", "https://rpc.example.com")
	t.Setenv("TOKEN_ADDRESS", testMint)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadConfig_Missing(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_ADDRESS", testMint)
	_, err := LoadConfig("")
	assert.ErrorIs(t, err, ErrConfigMissing)
	assert.Contains(t, err.Error(), "RPC_ENDPOINT")

	clearEnv(t)
	t.Setenv("RPC_ENDPOINT", "https://rpc.example.com")
	_, err = LoadConfig("")
	assert.ErrorIs(t, err, ErrConfigMissing)
	assert.Contains(t, err.Error(), "TOKEN_ADDRESS")
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"rpc scheme":    {"RPC_ENDPOINT": "ws://rpc.example.com"},
		"rpc garbage":   {"RPC_ENDPOINT": "not a url"},
		"token address": {"TOKEN_ADDRESS": "not-base58-0OIl"},
		"program":       {"PUMP_PROGRAM": "xyz"},
		"feed scheme":   {"PRICE_FEED_URL": "ftp://prices.example.com"},
		"poll interval": {"POLL_INTERVAL": "-1s"},
		"cycle timeout": {"CYCLE_TIMEOUT": "0s"},
		"feed timeout":  {"PRICE_FEED_TIMEOUT": "-5s"},
	}

	for name, overrides := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("RPC_ENDPOINT", "https://rpc.example.com")
			t.Setenv("TOKEN_ADDRESS", testMint)
			for key, value := range overrides {
				t.Setenv(key, value)
			}

			_, err := LoadConfig("")
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrConfigMissing)
		})
	}
}
