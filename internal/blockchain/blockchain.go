// internal/blockchain/blockchain.go
package blockchain

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// AccountReader reads raw account data.
// Implementations return ErrAccountNotFound when the account does not exist or holds no data.
type AccountReader interface {
	GetAccountData(ctx context.Context, pubkey solana.PublicKey) ([]byte, error)
}

// SupplyReader queries the total supply of an SPL token mint.
type SupplyReader interface {
	GetTokenSupply(ctx context.Context, mint solana.PublicKey) (*TokenSupply, error)
}

// Client is the chain data source consumed by the monitor.
type Client interface {
	AccountReader
	SupplyReader
}
