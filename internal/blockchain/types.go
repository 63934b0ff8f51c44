// internal/blockchain/types.go
package blockchain

import "errors"

// ErrAccountNotFound is returned by AccountReader implementations for absent accounts.
var ErrAccountNotFound = errors.New("account not found")

// TokenSupply is the raw supply of a mint as reported by the chain.
type TokenSupply struct {
	// Amount is the raw integer amount, ignoring decimals.
	Amount string
	// Decimals configured on the mint.
	Decimals uint8
}
