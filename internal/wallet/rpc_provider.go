package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	errs "github.com/ballotsync/ballotsync/internal/errors"
)

const rpcMethodNotFound = -32601

// RPCProvider talks JSON-RPC 2.0 over HTTP to a real wallet/node endpoint.
type RPCProvider struct {
	url    string
	client *http.Client

	idCounter atomic.Uint64

	listenersMutex sync.Mutex
	listeners      map[string][]Listener
}

func NewRPCProvider(url string) *RPCProvider {
	return &RPCProvider{
		url:       url,
		client:    &http.Client{Timeout: 30 * time.Second},
		listeners: make(map[string][]Listener),
	}
}

type rpcRequest struct {
	JsonRpc string `json:"jsonrpc"`
	Id      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (provider *RPCProvider) On(event string, listener Listener) {
	provider.listenersMutex.Lock()
	defer provider.listenersMutex.Unlock()

	provider.listeners[event] = append(provider.listeners[event], listener)
}

func (provider *RPCProvider) Request(ctx context.Context, method string, params any) (any, error) {
	body, err := json.Marshal(rpcRequest{
		JsonRpc: "2.0",
		Id:      provider.idCounter.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := provider.client.Do(httpRequest)
	if err != nil {
		return nil, &errs.ProviderUnavailableError{Reason: fmt.Sprintf("wallet rpc endpoint unreachable: %v", err)}
	}
	defer httpResponse.Body.Close()

	response := &rpcResponse{}
	if err := json.NewDecoder(httpResponse.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("failed to decode wallet rpc response: %w", err)
	}

	if response.Error != nil {
		//permissive provider contract: unknown methods resolve to null
		if response.Error.Code == rpcMethodNotFound {
			return nil, nil
		}
		if response.Error.Code == errs.CodeUserRejected {
			return nil, &errs.UserRejectedError{Code: response.Error.Code}
		}
		return nil, fmt.Errorf("wallet rpc error %d: %s", response.Error.Code, response.Error.Message)
	}

	if len(response.Result) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to decode wallet rpc result: %w", err)
	}

	return result, nil
}
