package solbc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rovshanmuradov/pumpcurve-monitor/internal/blockchain"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

// newRPCServer answers JSON-RPC calls with the result registered for the method.
func newRPCServer(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		result, ok := results[req.Method]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"method not found"}}`, req.ID)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, req.ID, result)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetAccountData(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	srv := newRPCServer(t, map[string]string{
		"getAccountInfo": fmt.Sprintf(`{"context":{"slot":1},"value":{"data":[%q,"base64"],"executable":false,"lamports":1,"owner":%q,"rentEpoch":0}}`,
			base64.StdEncoding.EncodeToString(payload), solana.SystemProgramID.String()),
	})

	client := NewClient(srv.URL, zaptest.NewLogger(t))
	data, err := client.GetAccountData(context.Background(), solana.SystemProgramID)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	success, failures, _ := client.GetMetrics()
	assert.Equal(t, uint64(1), success)
	assert.Equal(t, uint64(0), failures)
}

func TestClient_GetAccountData_NotFound(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"getAccountInfo": `{"context":{"slot":1},"value":null}`,
	})

	client := NewClient(srv.URL, zaptest.NewLogger(t))
	_, err := client.GetAccountData(context.Background(), solana.SystemProgramID)
	assert.ErrorIs(t, err, blockchain.ErrAccountNotFound)
}

func TestClient_GetAccountData_RPCFailure(t *testing.T) {
	srv := newRPCServer(t, map[string]string{})

	client := NewClient(srv.URL, zaptest.NewLogger(t))
	_, err := client.GetAccountData(context.Background(), solana.SystemProgramID)
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "getAccountInfo", rpcErr.Method)
	assert.Equal(t, srv.URL, rpcErr.Endpoint)
	assert.NotErrorIs(t, err, blockchain.ErrAccountNotFound)

	_, failures, _ := client.GetMetrics()
	assert.Equal(t, uint64(1), failures)
}

func TestClient_GetTokenSupply(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"getTokenSupply": `{"context":{"slot":1},"value":{"amount":"1000000000000000","decimals":6,"uiAmount":1000000000,"uiAmountString":"1000000000"}}`,
	})

	client := NewClient(srv.URL, zaptest.NewLogger(t))
	supply, err := client.GetTokenSupply(context.Background(), solana.SystemProgramID)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000", supply.Amount)
	assert.Equal(t, uint8(6), supply.Decimals)
}

func TestClient_GetTokenSupply_EmptyValue(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"getTokenSupply": `{"context":{"slot":1},"value":null}`,
	})

	client := NewClient(srv.URL, zaptest.NewLogger(t))
	_, err := client.GetTokenSupply(context.Background(), solana.SystemProgramID)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

type latencyCall struct {
	method  string
	success bool
}

type fakeLatencyRecorder struct {
	calls []latencyCall
}

func (f *fakeLatencyRecorder) RecordRPCLatency(method string, _ time.Duration, success bool) {
	f.calls = append(f.calls, latencyCall{method: method, success: success})
}

func TestClient_LatencyRecorder(t *testing.T) {
	srv := newRPCServer(t, map[string]string{
		"getTokenSupply": `{"context":{"slot":1},"value":{"amount":"1","decimals":6,"uiAmount":0.000001,"uiAmountString":"0.000001"}}`,
	})

	recorder := &fakeLatencyRecorder{}
	client := NewClient(srv.URL, zaptest.NewLogger(t))
	client.SetLatencyRecorder(recorder)

	_, err := client.GetTokenSupply(context.Background(), solana.SystemProgramID)
	require.NoError(t, err)
	_, err = client.GetAccountData(context.Background(), solana.SystemProgramID)
	require.Error(t, err)

	assert.Equal(t, []latencyCall{
		{method: "getTokenSupply", success: true},
		{method: "getAccountInfo", success: false},
	}, recorder.calls)
}
