package ledger

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcHandler func(t *testing.T, params []json.RawMessage) (result interface{}, rpcErr map[string]interface{})

// fakeRPC is a minimal JSON-RPC endpoint keyed by method name.
type fakeRPC struct {
	t        *testing.T
	mu       sync.Mutex
	handlers map[string]rpcHandler
	calls    map[string]int
	sent     []*solana.Transaction
}

func newFakeRPC(t *testing.T) (*fakeRPC, *httptest.Server) {
	t.Helper()

	f := &fakeRPC{t: t, handlers: map[string]rpcHandler{}, calls: map[string]int{}}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeRPC) handle(method string, h rpcHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[method] = h
}

func (f *fakeRPC) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeRPC) sentTransactions() []*solana.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*solana.Transaction(nil), f.sent...)
}

func (f *fakeRPC) serve(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.calls[req.Method]++
	h, ok := f.handlers[req.Method]
	f.mu.Unlock()

	resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
	if !ok {
		resp["error"] = map[string]interface{}{"code": -32601, "message": "method not found: " + req.Method}
	} else {
		result, rpcErr := h(f.t, req.Params)
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeRPC) serveAccount(owner solana.PublicKey, data []byte) {
	f.handle("getAccountInfo", func(_ *testing.T, _ []json.RawMessage) (interface{}, map[string]interface{}) {
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 1},
			"value": map[string]interface{}{
				"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
				"executable": false,
				"lamports":   1_000_000,
				"owner":      owner.String(),
				"rentEpoch":  0,
			},
		}, nil
	})
}

func (f *fakeRPC) serveMissingAccount() {
	f.handle("getAccountInfo", func(_ *testing.T, _ []json.RawMessage) (interface{}, map[string]interface{}) {
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 1},
			"value":   nil,
		}, nil
	})
}

// serveSubmission wires blockhash, send and status handlers. Sent transactions are decoded and must carry valid signatures.
func (f *fakeRPC) serveSubmission(status string, txErr interface{}) {
	blockhash := solana.NewWallet().PublicKey().String()

	f.handle("getLatestBlockhash", func(_ *testing.T, _ []json.RawMessage) (interface{}, map[string]interface{}) {
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 1},
			"value":   map[string]interface{}{"blockhash": blockhash, "lastValidBlockHeight": 100},
		}, nil
	})

	f.handle("sendTransaction", func(t *testing.T, params []json.RawMessage) (interface{}, map[string]interface{}) {
		require.NotEmpty(t, params)

		var encoded string
		require.NoError(t, json.Unmarshal(params[0], &encoded))
		raw, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)

		tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
		require.NoError(t, err)
		require.NoError(t, tx.VerifySignatures())

		f.mu.Lock()
		f.sent = append(f.sent, tx)
		f.mu.Unlock()

		return tx.Signatures[0].String(), nil
	})

	f.handle("getSignatureStatuses", func(_ *testing.T, _ []json.RawMessage) (interface{}, map[string]interface{}) {
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 2},
			"value": []interface{}{
				map[string]interface{}{
					"slot":               2,
					"confirmations":      nil,
					"err":                txErr,
					"confirmationStatus": status,
				},
			},
		}, nil
	})
}
