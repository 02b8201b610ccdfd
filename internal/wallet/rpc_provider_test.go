package wallet_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/ballotsync/ballotsync/internal/errors"
	wallet "github.com/ballotsync/ballotsync/internal/wallet"
)

func startRpcServer(t *testing.T, handler func(method string) (any, map[string]any)) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request struct {
			Id     uint64 `json:"id"`
			Method string `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Fatalf("failed to decode rpc request: %v", err)
		}

		result, rpcErr := handler(request.Method)

		response := map[string]any{"jsonrpc": "2.0", "id": request.Id}
		if rpcErr != nil {
			response["error"] = rpcErr
		} else {
			response["result"] = result
		}

		json.NewEncoder(w).Encode(response)
	}))

	t.Cleanup(server.Close)
	return server
}

func TestRpcProviderRequest(t *testing.T) {
	server := startRpcServer(t, func(method string) (any, map[string]any) {
		switch method {
		case wallet.MethodChainId:
			return "0x539", nil
		case wallet.MethodRequestAccounts:
			return []string{"0xabc"}, nil
		default:
			return nil, map[string]any{"code": -32601, "message": "method not found"}
		}
	})

	provider := wallet.NewRPCProvider(server.URL)
	adapter := wallet.NewAdapter(provider)

	session, err := adapter.Connect(context.Background())
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	if session.Account != "0xabc" || session.ChainId != 1337 {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestRpcProviderMapsUserRejection(t *testing.T) {
	server := startRpcServer(t, func(method string) (any, map[string]any) {
		return nil, map[string]any{"code": 4001, "message": "user rejected"}
	})

	provider := wallet.NewRPCProvider(server.URL)

	_, err := provider.Request(context.Background(), wallet.MethodRequestAccounts, nil)

	rejected := &errs.UserRejectedError{}
	if !errors.As(err, &rejected) {
		t.Fatalf("expected UserRejectedError, got %v", err)
	}
}

func TestRpcProviderUnknownMethodResolvesToNil(t *testing.T) {
	server := startRpcServer(t, func(method string) (any, map[string]any) {
		return nil, map[string]any{"code": -32601, "message": "method not found"}
	})

	provider := wallet.NewRPCProvider(server.URL)

	result, err := provider.Request(context.Background(), "wallet_watchAsset", nil)
	if err != nil {
		t.Fatalf("unknown method must not fail, got %v", err)
	}

	if result != nil {
		t.Fatalf("unknown method must resolve to nil, got %v", result)
	}
}

func TestRpcProviderUnreachableEndpoint(t *testing.T) {
	provider := wallet.NewRPCProvider("http://127.0.0.1:1")

	_, err := provider.Request(context.Background(), wallet.MethodChainId, nil)

	unavailable := &errs.ProviderUnavailableError{}
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ProviderUnavailableError, got %v", err)
	}
}
