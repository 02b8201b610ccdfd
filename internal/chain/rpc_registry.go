package chain

import (
	"context"
	"encoding/json"
	"fmt"

	wallet "github.com/ballotsync/ballotsync/internal/wallet"
)

// RPCRegistry serves the Registry read surface through a wallet provider's
// RPC endpoint, for deployments where the contract is reached over a node.
type RPCRegistry struct {
	provider Provider
	address  string
}

// Provider is the subset of the wallet provider needed for read calls.
type Provider interface {
	Request(ctx context.Context, method string, params any) (any, error)
}

func NewRPCRegistry(provider Provider, address string) *RPCRegistry {
	return &RPCRegistry{provider: provider, address: address}
}

type callParams struct {
	To   string `json:"to"`
	Data []byte `json:"data"`
}

func (registry *RPCRegistry) call(ctx context.Context, data []byte, out any) error {
	result, err := registry.provider.Request(ctx, "eth_call", callParams{To: registry.address, Data: data})
	if err != nil {
		return err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, out)
}

func (registry *RPCRegistry) CandidatesCount(ctx context.Context) (int64, error) {
	data, _ := json.Marshal(callData{Method: "candidatesCount"})

	var count int64
	if err := registry.call(ctx, data, &count); err != nil {
		return 0, fmt.Errorf("candidatesCount call failed: %w", err)
	}

	return count, nil
}

func (registry *RPCRegistry) GetCandidate(ctx context.Context, index int64) (ChainCandidate, error) {
	data, _ := json.Marshal(callData{Method: "getCandidate", Params: []string{fmt.Sprintf("%d", index)}})

	candidate := ChainCandidate{}
	if err := registry.call(ctx, data, &candidate); err != nil {
		return ChainCandidate{}, fmt.Errorf("getCandidate(%d) call failed: %w", index, err)
	}

	return candidate, nil
}

var _ Registry = (*RPCRegistry)(nil)
var _ Registry = (*MemoryRegistry)(nil)
var _ wallet.TxApplier = (*MemoryRegistry)(nil)
