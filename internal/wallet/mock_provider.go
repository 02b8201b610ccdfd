package wallet

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	hash "github.com/ballotsync/ballotsync/internal/crypto/hash"
	errs "github.com/ballotsync/ballotsync/internal/errors"
)

// TxApplier consumes transactions submitted through MethodSendTransaction and
// returns the resulting transaction hash. The deterministic registry double
// implements it so that submitted calls take effect in-process.
type TxApplier interface {
	ApplyTransaction(tx Transaction) (string, error)
}

// MockProvider is the deterministic signing backend. Account discovery
// resolves immediately, signatures are derived from the payload via sha256 so
// conformance tests can assert reproducibility, and connect/disconnect/
// switchChain each emit their notification exactly once per call.
type MockProvider struct {
	mutex     sync.Mutex
	accounts  []string
	chainId   int64
	connected bool

	rejectNext bool
	applier    TxApplier
	txCounter  uint64

	listenersMutex sync.Mutex
	listeners      map[string][]Listener
}

func NewMockProvider(accounts []string, chainId int64) *MockProvider {
	return &MockProvider{
		accounts:  accounts,
		chainId:   chainId,
		listeners: make(map[string][]Listener),
	}
}

// SetTxApplier wires the backend that submitted transactions are applied to.
func (provider *MockProvider) SetTxApplier(applier TxApplier) {
	provider.mutex.Lock()
	defer provider.mutex.Unlock()

	provider.applier = applier
}

// RejectNextRequest makes the next approval-gated request fail with a user
// rejection, simulating the user dismissing the wallet prompt.
func (provider *MockProvider) RejectNextRequest() {
	provider.mutex.Lock()
	defer provider.mutex.Unlock()

	provider.rejectNext = true
}

func (provider *MockProvider) On(event string, listener Listener) {
	provider.listenersMutex.Lock()
	defer provider.listenersMutex.Unlock()

	provider.listeners[event] = append(provider.listeners[event], listener)
}

func (provider *MockProvider) emit(event string, data any) {
	provider.listenersMutex.Lock()
	listeners := make([]Listener, len(provider.listeners[event]))
	copy(listeners, provider.listeners[event])
	provider.listenersMutex.Unlock()

	for _, listener := range listeners {
		listener(event, data)
	}
}

// Connect marks the provider session active and emits connect once.
func (provider *MockProvider) Connect() {
	provider.mutex.Lock()
	provider.connected = true
	chainId := provider.chainId
	provider.mutex.Unlock()

	provider.emit(EventConnect, chainId)
}

// Disconnect destroys the provider session and emits disconnect once.
func (provider *MockProvider) Disconnect() {
	provider.mutex.Lock()
	provider.connected = false
	provider.mutex.Unlock()

	provider.emit(EventDisconnect, nil)
}

// SwitchChain changes the current chain and emits chainChanged once.
func (provider *MockProvider) SwitchChain(newId int64) {
	provider.mutex.Lock()
	provider.chainId = newId
	provider.mutex.Unlock()

	provider.emit(EventChainChanged, newId)
}

func (provider *MockProvider) Request(ctx context.Context, method string, params any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch method {
	case MethodRequestAccounts:
		return provider.requestAccounts(true)
	case MethodAccounts:
		return provider.requestAccounts(false)
	case MethodChainId:
		provider.mutex.Lock()
		defer provider.mutex.Unlock()
		return provider.chainId, nil
	case MethodSign:
		return provider.sign(params)
	case MethodSendTransaction:
		return provider.sendTransaction(params)
	default:
		return nil, nil
	}
}

func (provider *MockProvider) requestAccounts(approve bool) (any, error) {
	provider.mutex.Lock()
	defer provider.mutex.Unlock()

	if !approve && !provider.connected {
		return []string{}, nil
	}

	if provider.rejectNext {
		provider.rejectNext = false
		return nil, &errs.UserRejectedError{Code: errs.CodeUserRejected}
	}

	provider.connected = true

	accounts := make([]string, len(provider.accounts))
	copy(accounts, provider.accounts)
	return accounts, nil
}

func (provider *MockProvider) sign(params any) (any, error) {
	signParams, ok := params.(SignParams)
	if !ok {
		return nil, fmt.Errorf("personal_sign expects SignParams, got %T", params)
	}

	provider.mutex.Lock()
	defer provider.mutex.Unlock()

	if provider.rejectNext {
		provider.rejectNext = false
		return nil, &errs.UserRejectedError{Code: errs.CodeUserRejected}
	}

	payload := signParams.Account + ":" + signParams.Message
	return hash.HashHex([]byte(payload)), nil
}

func (provider *MockProvider) sendTransaction(params any) (any, error) {
	tx, ok := params.(Transaction)
	if !ok {
		return nil, fmt.Errorf("eth_sendTransaction expects Transaction, got %T", params)
	}

	provider.mutex.Lock()
	if provider.rejectNext {
		provider.rejectNext = false
		provider.mutex.Unlock()
		return nil, &errs.UserRejectedError{Code: errs.CodeUserRejected}
	}
	applier := provider.applier
	provider.txCounter++
	counter := provider.txCounter
	provider.mutex.Unlock()

	if applier != nil {
		return applier.ApplyTransaction(tx)
	}

	payload := append([]byte(tx.From+":"+tx.To+":"), tx.Data...)
	payload = strconv.AppendUint(payload, counter, 10)
	return hash.HashHex(payload), nil
}
