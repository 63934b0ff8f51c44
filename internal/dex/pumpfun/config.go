// =============================
// File: internal/dex/pumpfun/config.go
// =============================
package pumpfun

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// Known PumpFun protocol addresses
var (
	// Program ID for Pump.fun protocol
	PumpFunProgramID = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
)

const (
	// LamportsPerSol is the base-unit granularity of SOL.
	LamportsPerSol = 1_000_000_000
	// TokenDecimals is fixed for every token minted through the bonding curve program.
	TokenDecimals = 6
)

// Config holds the addresses needed to locate a token's bonding curve.
type Config struct {
	ContractAddress solana.PublicKey
	Mint            solana.PublicKey
}

// GetDefaultConfig creates a default configuration for the Pump.fun program
func GetDefaultConfig() *Config {
	return &Config{
		ContractAddress: PumpFunProgramID,
	}
}

// SetupForToken configures the Config instance for a specific token.
// An empty programID keeps the default Pump.fun program.
func (cfg *Config) SetupForToken(tokenMint, programID string, logger *zap.Logger) error {
	if tokenMint == "" {
		return fmt.Errorf("token mint address is required")
	}

	var err error
	cfg.Mint, err = solana.PublicKeyFromBase58(tokenMint)
	if err != nil {
		return fmt.Errorf("invalid token mint address: %w", err)
	}

	if programID != "" {
		cfg.ContractAddress, err = solana.PublicKeyFromBase58(programID)
		if err != nil {
			return fmt.Errorf("invalid program address: %w", err)
		}
	}
	if cfg.ContractAddress.IsZero() {
		cfg.ContractAddress = PumpFunProgramID
	}

	logger.Info("PumpFun configuration prepared",
		zap.String("program_id", cfg.ContractAddress.String()),
		zap.String("token_mint", cfg.Mint.String()))

	return nil
}
