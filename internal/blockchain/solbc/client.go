// internal/blockchain/solbc/client.go
package solbc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/pumpcurve-monitor/internal/blockchain"
)

// LatencyRecorder receives the duration of every RPC call.
type LatencyRecorder interface {
	RecordRPCLatency(method string, duration time.Duration, success bool)
}

// Client – тонкий адаптер для чтения состояния Solana через solana-go.
type Client struct {
	rpc        *rpc.Client
	endpoint   string
	commitment rpc.CommitmentType
	logger     *zap.Logger
	metrics    *metrics
	recorder   LatencyRecorder
}

// metrics содержит метрики RPC узла
type metrics struct {
	successCount uint64
	errorCount   uint64
	latency      time.Duration
	mutex        sync.RWMutex
}

// NewClient создаёт новый клиент, принимая RPC URL и логгер через dependency injection.
func NewClient(rpcURL string, logger *zap.Logger) *Client {
	return &Client{
		rpc:        rpc.New(rpcURL),
		endpoint:   rpcURL,
		commitment: rpc.CommitmentConfirmed,
		logger:     logger.Named("solbc-client"),
		metrics:    &metrics{},
	}
}

// SetLatencyRecorder attaches an external latency sink.
func (c *Client) SetLatencyRecorder(r LatencyRecorder) {
	c.recorder = r
}

// GetAccountData returns the binary data of an account.
func (c *Client) GetAccountData(ctx context.Context, pubkey solana.PublicKey) ([]byte, error) {
	start := time.Now()
	result, err := c.rpc.GetAccountInfoWithOpts(ctx, pubkey, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: c.commitment,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		c.updateMetrics("getAccountInfo", true, time.Since(start))
		return nil, fmt.Errorf("%w: %s", blockchain.ErrAccountNotFound, pubkey)
	}
	if err != nil {
		c.updateMetrics("getAccountInfo", false, time.Since(start))
		c.logger.Debug("GetAccountInfo error",
			zap.String("pubkey", pubkey.String()),
			zap.Error(err))
		return nil, NewRPCError(err, c.endpoint, "getAccountInfo")
	}
	c.updateMetrics("getAccountInfo", true, time.Since(start))

	if result.Value == nil || result.Value.Data == nil {
		return nil, fmt.Errorf("%w: %s", blockchain.ErrAccountNotFound, pubkey)
	}
	data := result.Value.Data.GetBinary()
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s has no data", blockchain.ErrAccountNotFound, pubkey)
	}

	return data, nil
}

// GetTokenSupply returns the raw supply and decimals of a mint.
func (c *Client) GetTokenSupply(ctx context.Context, mint solana.PublicKey) (*blockchain.TokenSupply, error) {
	start := time.Now()
	result, err := c.rpc.GetTokenSupply(ctx, mint, c.commitment)
	if err != nil {
		c.updateMetrics("getTokenSupply", false, time.Since(start))
		c.logger.Debug("GetTokenSupply error",
			zap.String("mint", mint.String()),
			zap.Error(err))
		return nil, NewRPCError(err, c.endpoint, "getTokenSupply")
	}
	c.updateMetrics("getTokenSupply", true, time.Since(start))

	if result == nil || result.Value == nil || result.Value.Amount == "" {
		return nil, NewRPCError(ErrInvalidResponse, c.endpoint, "getTokenSupply")
	}

	return &blockchain.TokenSupply{
		Amount:   result.Value.Amount,
		Decimals: result.Value.Decimals,
	}, nil
}

// Close releases the underlying RPC transport.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// GetMetrics возвращает текущие метрики узла
func (c *Client) GetMetrics() (uint64, uint64, time.Duration) {
	c.metrics.mutex.RLock()
	defer c.metrics.mutex.RUnlock()

	return atomic.LoadUint64(&c.metrics.successCount),
		atomic.LoadUint64(&c.metrics.errorCount),
		c.metrics.latency
}

// updateMetrics обновляет метрики узла
func (c *Client) updateMetrics(method string, success bool, latency time.Duration) {
	if c.recorder != nil {
		c.recorder.RecordRPCLatency(method, latency, success)
	}

	c.metrics.mutex.Lock()
	defer c.metrics.mutex.Unlock()

	if success {
		atomic.AddUint64(&c.metrics.successCount, 1)
	} else {
		atomic.AddUint64(&c.metrics.errorCount, 1)
	}

	if c.metrics.latency == 0 {
		c.metrics.latency = latency
		return
	}
	c.metrics.latency = (c.metrics.latency + latency) / 2
}

// Гарантируем, что Client реализует интерфейс blockchain.Client.
var _ blockchain.Client = (*Client)(nil)
