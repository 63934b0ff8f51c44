// Package pumpfun reads the state of a Pump.fun bonding curve.
//
// This package provides:
//   - DeriveBondingCurveAddress(): the bonding curve PDA of a mint ("bonding-curve" + mint seeds).
//   - DecodeBondingCurve(): validation of the account discriminator and decoding of the fixed layout.
//   - PriceInSol(), CalculatePrice(): spot price from the virtual reserves.
//
// Account layout (little-endian):
//
//	offset  0  [8]byte  discriminator
//	offset  8  int64    virtual token reserves
//	offset 16  int64    virtual sol reserves
//	offset 24  int64    real token reserves
//	offset 32  int64    real sol reserves
//	offset 40  int64    token total supply
//	offset 48  uint8    complete flag
//
// Usage example:
//
//	cfg := pumpfun.GetDefaultConfig()
//	if err := cfg.SetupForToken("TOKEN_MINT_ADDRESS", "", logger); err != nil {
//	    log.Fatal(err)
//	}
//	pda, err := cfg.BondingCurveAddress()
//	...
//	state, err := pumpfun.DecodeBondingCurve(data)
//	price, err := pumpfun.CalculatePrice(state, solUSD)
package pumpfun
