// =============================
// File: internal/dex/pumpfun/types.go
// =============================
package pumpfun

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/blockchain"
)

var (
	ErrAccountNotFound   = blockchain.ErrAccountNotFound
	ErrInvalidLength     = errors.New("invalid bonding curve data length")
	ErrInvalidSchema     = errors.New("invalid bonding curve discriminator")
	ErrInvalidReserves   = errors.New("invalid reserve state")
	ErrAddressDerivation = errors.New("failed to derive bonding curve address")
)

// BondingCurveState is the decoded content of a bonding curve account.
// Values are raw on-chain integers: lamports for SOL, 10^-6 units for tokens.
type BondingCurveState struct {
	VirtualTokenReserves int64
	VirtualSolReserves   int64
	RealTokenReserves    int64
	RealSolReserves      int64
	TokenTotalSupply     int64
	Complete             bool
}

// DerivedAddress is a program derived address together with the bump that produced it.
type DerivedAddress struct {
	Address solana.PublicKey
	Bump    uint8
}
