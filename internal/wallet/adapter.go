package wallet

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	errs "github.com/ballotsync/ballotsync/internal/errors"
)

// Adapter owns the single wallet session on top of a pluggable Provider. It
// performs the connect handshake, tracks account and chain change
// notifications from the backend, and hands mutating callers a fresh view of
// the session immediately before they submit.
type Adapter struct {
	provider Provider

	sessionMutex sync.RWMutex
	session      *Session
}

func NewAdapter(provider Provider) *Adapter {
	adapter := &Adapter{provider: provider}

	if provider != nil {
		provider.On(EventChainChanged, adapter.handleChainChanged)
		provider.On(EventAccountsChanged, adapter.handleAccountsChanged)
		provider.On(EventDisconnect, adapter.handleDisconnect)
	}

	return adapter
}

// Connect performs the account and chain-id handshake and replaces any prior
// session with the result.
func (adapter *Adapter) Connect(ctx context.Context) (Session, error) {
	if adapter.provider == nil {
		return Session{}, &errs.ProviderUnavailableError{}
	}

	accountsResult, err := adapter.provider.Request(ctx, MethodRequestAccounts, nil)
	if err != nil {
		return Session{}, err
	}

	accounts := accountsFromResult(accountsResult)
	if len(accounts) == 0 {
		return Session{}, &errs.ProviderUnavailableError{Reason: "wallet returned no accounts"}
	}

	chainIdResult, err := adapter.provider.Request(ctx, MethodChainId, nil)
	if err != nil {
		return Session{}, err
	}

	chainId, err := chainIdFromResult(chainIdResult)
	if err != nil {
		return Session{}, err
	}

	session := &Session{
		Account:   accounts[0],
		ChainId:   chainId,
		Connected: true,
	}

	adapter.sessionMutex.Lock()
	adapter.session = session
	adapter.sessionMutex.Unlock()

	log.Printf("|Wallet| Connected account %s on chain %d", session.Account, session.ChainId)
	return *session, nil
}

// Disconnect destroys the current session.
func (adapter *Adapter) Disconnect() {
	adapter.sessionMutex.Lock()
	adapter.session = nil
	adapter.sessionMutex.Unlock()

	log.Print("|Wallet| Disconnected")
}

// Session returns a copy of the active session. Callers submitting a mutation
// must call this immediately before submitting rather than caching it.
func (adapter *Adapter) Session() (Session, bool) {
	adapter.sessionMutex.RLock()
	defer adapter.sessionMutex.RUnlock()

	if adapter.session == nil || !adapter.session.Connected {
		return Session{}, false
	}

	return *adapter.session, true
}

// Request forwards to the provider, failing when no backend is present.
func (adapter *Adapter) Request(ctx context.Context, method string, params any) (any, error) {
	if adapter.provider == nil {
		return nil, &errs.ProviderUnavailableError{}
	}

	return adapter.provider.Request(ctx, method, params)
}

func (adapter *Adapter) handleChainChanged(event string, data any) {
	chainId, err := chainIdFromResult(data)
	if err != nil {
		log.Printf("|Wallet| Ignoring chainChanged notification: %v", err)
		return
	}

	adapter.sessionMutex.Lock()
	defer adapter.sessionMutex.Unlock()

	if adapter.session != nil {
		adapter.session.ChainId = chainId
	}
}

func (adapter *Adapter) handleAccountsChanged(event string, data any) {
	accounts := accountsFromResult(data)

	adapter.sessionMutex.Lock()
	defer adapter.sessionMutex.Unlock()

	if len(accounts) == 0 {
		adapter.session = nil
		return
	}

	if adapter.session != nil {
		adapter.session.Account = accounts[0]
	}
}

func (adapter *Adapter) handleDisconnect(event string, data any) {
	adapter.sessionMutex.Lock()
	adapter.session = nil
	adapter.sessionMutex.Unlock()
}

func accountsFromResult(result any) []string {
	switch value := result.(type) {
	case []string:
		return value
	case []any:
		accounts := make([]string, 0, len(value))
		for _, item := range value {
			if account, ok := item.(string); ok {
				accounts = append(accounts, account)
			}
		}
		return accounts
	default:
		return nil
	}
}

func chainIdFromResult(result any) (int64, error) {
	switch value := result.(type) {
	case int64:
		return value, nil
	case int:
		return int64(value), nil
	case float64:
		return int64(value), nil
	case string:
		if after, found := strings.CutPrefix(value, "0x"); found {
			return strconv.ParseInt(after, 16, 64)
		}
		return strconv.ParseInt(value, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected chain id result %T", result)
	}
}
