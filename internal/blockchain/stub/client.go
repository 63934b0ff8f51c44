package stub

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/pumpcurve-monitor/internal/blockchain"
)

// Client implements blockchain.Client from canned responses.
type Client struct {
	Accounts map[solana.PublicKey][]byte
	Supplies map[solana.PublicKey]*blockchain.TokenSupply

	// Errors injected per method name ("GetAccountData", "GetTokenSupply").
	Errors map[string]error

	Calls []string
}

// NewClient creates an empty stub chain client.
func NewClient() *Client {
	return &Client{
		Accounts: make(map[solana.PublicKey][]byte),
		Supplies: make(map[solana.PublicKey]*blockchain.TokenSupply),
		Errors:   make(map[string]error),
	}
}

// GetAccountData returns the registered account data.
func (c *Client) GetAccountData(_ context.Context, pubkey solana.PublicKey) ([]byte, error) {
	c.Calls = append(c.Calls, "GetAccountData")
	if err := c.Errors["GetAccountData"]; err != nil {
		return nil, err
	}
	data, ok := c.Accounts[pubkey]
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", blockchain.ErrAccountNotFound, pubkey)
	}
	return data, nil
}

// GetTokenSupply returns the registered supply.
func (c *Client) GetTokenSupply(_ context.Context, mint solana.PublicKey) (*blockchain.TokenSupply, error) {
	c.Calls = append(c.Calls, "GetTokenSupply")
	if err := c.Errors["GetTokenSupply"]; err != nil {
		return nil, err
	}
	supply, ok := c.Supplies[mint]
	if !ok {
		return nil, fmt.Errorf("no supply registered for %s", mint)
	}
	return supply, nil
}

var _ blockchain.Client = (*Client)(nil)
