// internal/monitor/token_state.go
package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/pumpcurve-monitor/internal/blockchain"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/dex/pumpfun"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/pricefeed"
)

// ErrSupplyQueryFailed wraps failures to read or parse the mint supply.
var ErrSupplyQueryFailed = errors.New("token supply query failed")

// Lifecycle is a coarse bucket derived from market cap.
type Lifecycle string

const (
	LifecycleUnknown    Lifecycle = "unknown"
	LifecycleGraduating Lifecycle = "graduating"
	LifecycleGraduated  Lifecycle = "graduated"
)

// Market cap thresholds in USD. Both comparisons are strict.
const (
	GraduatingMarketCap = 100_000.0
	GraduatedMarketCap  = 1_000_000.0
)

// Classify maps a USD market cap onto a lifecycle bucket.
func Classify(marketCap float64) Lifecycle {
	switch {
	case marketCap > GraduatedMarketCap:
		return LifecycleGraduated
	case marketCap > GraduatingMarketCap:
		return LifecycleGraduating
	default:
		return LifecycleUnknown
	}
}

// TokenState is the result of one poll cycle.
type TokenState struct {
	Price     float64
	MarketCap float64
	State     Lifecycle

	Mint         solana.PublicKey
	BondingCurve pumpfun.DerivedAddress
	Curve        *pumpfun.BondingCurveState
	SolPrice     float64
	Supply       decimal.Decimal
}

// TokenServiceConfig carries everything a TokenService needs.
type TokenServiceConfig struct {
	Mint      solana.PublicKey
	ProgramID solana.PublicKey
	Chain     blockchain.Client
	PriceFeed pricefeed.Feed
	Logger    *zap.Logger
}

// TokenService computes the state of one token from its bonding curve.
type TokenService struct {
	mint      solana.PublicKey
	programID solana.PublicKey
	chain     blockchain.Client
	feed      pricefeed.Feed
	logger    *zap.Logger
}

// NewTokenService validates cfg and builds the service.
func NewTokenService(cfg TokenServiceConfig) (*TokenService, error) {
	if cfg.Mint.IsZero() {
		return nil, fmt.Errorf("token mint is required")
	}
	if cfg.Chain == nil {
		return nil, fmt.Errorf("chain client is required")
	}
	if cfg.PriceFeed == nil {
		return nil, fmt.Errorf("price feed is required")
	}
	programID := cfg.ProgramID
	if programID.IsZero() {
		programID = pumpfun.PumpFunProgramID
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TokenService{
		mint:      cfg.Mint,
		programID: programID,
		chain:     cfg.Chain,
		feed:      cfg.PriceFeed,
		logger:    logger.Named("token-service"),
	}, nil
}

// GetTokenState runs the full pipeline once. Any failure aborts the cycle with no partial result.
func (s *TokenService) GetTokenState(ctx context.Context) (*TokenState, error) {
	pda, err := pumpfun.DeriveBondingCurveAddress(s.mint, s.programID)
	if err != nil {
		return nil, err
	}

	data, err := s.chain.GetAccountData(ctx, pda.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to get bonding curve account %s: %w", pda.Address, err)
	}

	curve, err := pumpfun.DecodeBondingCurve(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bonding curve %s: %w", pda.Address, err)
	}

	solPrice, err := s.feed.SolUSD(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get SOL price: %w", err)
	}

	price, err := pumpfun.CalculatePrice(curve, solPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate price: %w", err)
	}

	supply, err := s.tokenSupply(ctx)
	if err != nil {
		return nil, err
	}

	marketCap := supply.InexactFloat64() * price
	state := &TokenState{
		Price:        price,
		MarketCap:    marketCap,
		State:        Classify(marketCap),
		Mint:         s.mint,
		BondingCurve: pda,
		Curve:        curve,
		SolPrice:     solPrice,
		Supply:       supply,
	}

	s.logger.Debug("Token state computed",
		zap.String("mint", s.mint.String()),
		zap.String("bonding_curve", pda.Address.String()),
		zap.Int64("virtual_sol_reserves", curve.VirtualSolReserves),
		zap.Int64("virtual_token_reserves", curve.VirtualTokenReserves),
		zap.Float64("sol_usd", solPrice),
		zap.Float64("price_usd", price),
		zap.Float64("market_cap_usd", marketCap),
		zap.String("state", string(state.State)))

	return state, nil
}

// tokenSupply returns the mint supply in human units: amount / 10^decimals.
func (s *TokenService) tokenSupply(ctx context.Context) (decimal.Decimal, error) {
	raw, err := s.chain.GetTokenSupply(ctx, s.mint)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrSupplyQueryFailed, err)
	}

	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q: %v", ErrSupplyQueryFailed, raw.Amount, err)
	}

	return amount.Shift(-int32(raw.Decimals)), nil
}
