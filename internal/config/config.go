// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfigMissing is returned when a required setting is absent.
var ErrConfigMissing = errors.New("missing required configuration")

type Config struct {
	RPCEndpoint      string        `mapstructure:"rpc_endpoint"`
	TokenAddress     string        `mapstructure:"token_address"`
	PumpProgram      string        `mapstructure:"pump_program"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	CycleTimeout     time.Duration `mapstructure:"cycle_timeout"`
	PriceFeedURL     string        `mapstructure:"price_feed_url"`
	PriceFeedTimeout time.Duration `mapstructure:"price_feed_timeout"`
	DebugLogging     bool          `mapstructure:"debug_logging"`
	LogFile          string        `mapstructure:"log_file"`
	MetricsAddr      string        `mapstructure:"metrics_addr"`
}

const (
	DefaultPumpProgram      = "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"
	DefaultPriceFeedURL     = "https://api.coingecko.com/api/v3/simple/price?ids=solana&vs_currencies=usd"
	DefaultPollInterval     = 10 * time.Second
	DefaultCycleTimeout     = 10 * time.Second
	DefaultPriceFeedTimeout = 5 * time.Second
)

var keys = []string{
	"rpc_endpoint",
	"token_address",
	"pump_program",
	"poll_interval",
	"cycle_timeout",
	"price_feed_url",
	"price_feed_timeout",
	"debug_logging",
	"log_file",
	"metrics_addr",
}

// LoadConfig reads settings from the process environment, falling back to the
// given dotenv file. A missing dotenv file is not an error. Process environment
// always wins over the file.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"pump_program":       DefaultPumpProgram,
		"poll_interval":      DefaultPollInterval,
		"cycle_timeout":      DefaultCycleTimeout,
		"price_feed_url":     DefaultPriceFeedURL,
		"price_feed_timeout": DefaultPriceFeedTimeout,
		"debug_logging":      false,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := loadDotEnv(v, envFile); err != nil {
		return nil, err
	}
	if err := loadEnvironmentVariables(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.RPCEndpoint = strings.TrimSpace(cfg.RPCEndpoint)
	cfg.TokenAddress = strings.TrimSpace(cfg.TokenAddress)
	cfg.PumpProgram = strings.TrimSpace(cfg.PumpProgram)

	return &cfg, validateConfig(&cfg)
}

// loadDotEnv layers dotenv values over the built-in defaults.
func loadDotEnv(v *viper.Viper, envFile string) error {
	if envFile == "" {
		return nil
	}
	values, err := godotenv.Read(envFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", envFile, err)
	}
	for key, value := range values {
		v.SetDefault(strings.ToLower(key), value)
	}
	return nil
}

func loadEnvironmentVariables(v *viper.Viper) error {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees env values for keys viper already knows about.
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", strings.ToUpper(key), err)
		}
	}
	return nil
}

func validateConfig(cfg *Config) error {
	if cfg.RPCEndpoint == "" {
		return fmt.Errorf("%w: RPC_ENDPOINT", ErrConfigMissing)
	}
	if cfg.TokenAddress == "" {
		return fmt.Errorf("%w: TOKEN_ADDRESS", ErrConfigMissing)
	}
	if err := validateURLWithCache(cfg.RPCEndpoint, "http"); err != nil {
		return fmt.Errorf("invalid RPC_ENDPOINT: %w", err)
	}
	if _, err := solana.PublicKeyFromBase58(cfg.TokenAddress); err != nil {
		return fmt.Errorf("invalid TOKEN_ADDRESS: %w", err)
	}
	if cfg.PumpProgram != "" {
		if _, err := solana.PublicKeyFromBase58(cfg.PumpProgram); err != nil {
			return fmt.Errorf("invalid PUMP_PROGRAM: %w", err)
		}
	}
	if cfg.PriceFeedURL != "" {
		if err := validateURLWithCache(cfg.PriceFeedURL, "http"); err != nil {
			return fmt.Errorf("invalid PRICE_FEED_URL: %w", err)
		}
	}
	return validateDurations(cfg)
}

func validateDurations(cfg *Config) error {
	if cfg.PollInterval <= 0 {
		return errors.New("invalid POLL_INTERVAL")
	}
	if cfg.CycleTimeout <= 0 {
		return errors.New("invalid CYCLE_TIMEOUT")
	}
	if cfg.PriceFeedTimeout <= 0 {
		return errors.New("invalid PRICE_FEED_TIMEOUT")
	}
	return nil
}

var urlCache sync.Map

// validateURLWithCache accepts protocol and its secure variant (http/https).
func validateURLWithCache(rawURL string, protocol string) error {
	if _, ok := urlCache.Load(rawURL); ok {
		return nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if !strings.HasPrefix(parsed.Scheme, protocol) || parsed.Host == "" {
		return errors.New("invalid URL protocol")
	}
	urlCache.Store(rawURL, parsed)
	return nil
}
