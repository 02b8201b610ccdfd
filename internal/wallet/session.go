package wallet

// Session is the ephemeral wallet session. Exactly one session is active per
// adapter instance; reconnecting replaces it.
type Session struct {
	Account   string
	ChainId   int64
	Connected bool
}
