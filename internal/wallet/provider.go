package wallet

import "context"

// Recognized request methods. Unrecognized methods resolve to a nil result,
// matching permissive real-wallet behavior.
const (
	MethodRequestAccounts = "eth_requestAccounts"
	MethodAccounts        = "eth_accounts"
	MethodChainId         = "eth_chainId"
	MethodSign            = "personal_sign"
	MethodSendTransaction = "eth_sendTransaction"
)

// Notification events emitted by a provider backend.
const (
	EventConnect         = "connect"
	EventDisconnect      = "disconnect"
	EventChainChanged    = "chainChanged"
	EventAccountsChanged = "accountsChanged"
)

// Listener receives provider notifications. Listeners are invoked
// synchronously, in registration order.
type Listener func(event string, data any)

// Provider is the pluggable signing backend: a real wallet reached over RPC
// or the deterministic in-process double. All on-chain mutations and session
// primitives go through Request.
type Provider interface {
	Request(ctx context.Context, method string, params any) (any, error)
	On(event string, listener Listener)
}

// Transaction is the payload for MethodSendTransaction.
type Transaction struct {
	From string `json:"from"`
	To   string `json:"to"`
	Data []byte `json:"data"`
}

// SignParams is the payload for MethodSign.
type SignParams struct {
	Account string `json:"account"`
	Message string `json:"message"`
}
