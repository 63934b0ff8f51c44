// =============================
// File: internal/dex/pumpfun/accounts.go
// =============================
package pumpfun

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// bondingCurveSeed is the domain-separation seed of the bonding curve PDA.
var bondingCurveSeed = []byte("bonding-curve")

// DeriveBondingCurveAddress computes the bonding curve PDA for a mint under the given program.
func DeriveBondingCurveAddress(mint, programID solana.PublicKey) (DerivedAddress, error) {
	address, bump, err := solana.FindProgramAddress(
		[][]byte{bondingCurveSeed, mint.Bytes()},
		programID,
	)
	if err != nil {
		return DerivedAddress{}, fmt.Errorf("%w for mint %s: %v", ErrAddressDerivation, mint, err)
	}

	return DerivedAddress{Address: address, Bump: bump}, nil
}

// BondingCurveAddress derives the bonding curve PDA of the configured mint.
func (cfg *Config) BondingCurveAddress() (DerivedAddress, error) {
	return DeriveBondingCurveAddress(cfg.Mint, cfg.ContractAddress)
}
