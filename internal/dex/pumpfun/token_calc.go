// internal/dex/pumpfun/token_calc.go
package pumpfun

import (
	"fmt"
	"math"
)

// PriceInSol returns the spot price of one token in SOL from the virtual reserves.
// Formula: Price = (VirtualSolReserves / 10^9) / (VirtualTokenReserves / 10^TokenDecimals)
func PriceInSol(state *BondingCurveState) (float64, error) {
	if state == nil {
		return 0, fmt.Errorf("%w: nil bonding curve state", ErrInvalidReserves)
	}
	if state.VirtualTokenReserves <= 0 || state.VirtualSolReserves <= 0 {
		return 0, fmt.Errorf("%w: virtual token reserves %d, virtual sol reserves %d",
			ErrInvalidReserves, state.VirtualTokenReserves, state.VirtualSolReserves)
	}

	solReserves := float64(state.VirtualSolReserves) / LamportsPerSol
	tokenReserves := float64(state.VirtualTokenReserves) / math.Pow10(TokenDecimals)

	return solReserves / tokenReserves, nil
}

// CalculatePrice returns the USD price of one token given the SOL/USD reference price.
func CalculatePrice(state *BondingCurveState, solPriceUSD float64) (float64, error) {
	priceInSol, err := PriceInSol(state)
	if err != nil {
		return 0, err
	}
	return priceInSol * solPriceUSD, nil
}
