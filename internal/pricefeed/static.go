package pricefeed

import (
	"context"
	"fmt"
	"math"
)

// Static always reports the same price. A non-positive price makes it fail like an unreachable feed.
type Static float64

// SolUSD returns the fixed price.
func (s Static) SolUSD(_ context.Context) (float64, error) {
	if s <= 0 || math.IsInf(float64(s), 0) || math.IsNaN(float64(s)) {
		return 0, fmt.Errorf("%w: static price %v", ErrPriceFeedUnavailable, float64(s))
	}
	return float64(s), nil
}

var _ Feed = Static(0)
