package chain

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	hash "github.com/ballotsync/ballotsync/internal/crypto/hash"
	wallet "github.com/ballotsync/ballotsync/internal/wallet"
)

// MemoryRegistry is the deterministic double of the on-chain registry
// contract. It serves the Registry read surface and applies transactions
// submitted through the mock provider, so registrations and votes take
// effect in-process. Ids equal their 1-based index; the roster is append-only.
type MemoryRegistry struct {
	mutex      sync.RWMutex
	candidates []ChainCandidate
	txCounter  uint64
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{}
}

func (registry *MemoryRegistry) CandidatesCount(ctx context.Context) (int64, error) {
	registry.mutex.RLock()
	defer registry.mutex.RUnlock()

	return int64(len(registry.candidates)), nil
}

func (registry *MemoryRegistry) GetCandidate(ctx context.Context, index int64) (ChainCandidate, error) {
	registry.mutex.RLock()
	defer registry.mutex.RUnlock()

	if index < 1 || index > int64(len(registry.candidates)) {
		return ChainCandidate{}, fmt.Errorf("candidate index %d out of range 1..%d", index, len(registry.candidates))
	}

	return registry.candidates[index-1], nil
}

// ApplyTransaction decodes a submitted contract call and applies it,
// returning a deterministic transaction hash.
func (registry *MemoryRegistry) ApplyTransaction(tx wallet.Transaction) (string, error) {
	call, err := decodeCallData(tx.Data)
	if err != nil {
		return "", err
	}

	registry.mutex.Lock()
	defer registry.mutex.Unlock()

	switch call.Method {
	case contractMethodAddCandidate:
		if len(call.Params) != 1 {
			return "", fmt.Errorf("addCandidate expects 1 param, got %d", len(call.Params))
		}
		registry.candidates = append(registry.candidates, ChainCandidate{
			Id:   int64(len(registry.candidates)) + 1,
			Name: call.Params[0],
		})
	case contractMethodVote:
		if len(call.Params) != 1 {
			return "", fmt.Errorf("vote expects 1 param, got %d", len(call.Params))
		}
		id, err := strconv.ParseInt(call.Params[0], 10, 64)
		if err != nil {
			return "", fmt.Errorf("vote expects a candidate id: %w", err)
		}
		if id < 1 || id > int64(len(registry.candidates)) {
			return "", fmt.Errorf("vote for unknown candidate %d", id)
		}
		registry.candidates[id-1].VoteCount++
	default:
		return "", fmt.Errorf("unknown contract method %q", call.Method)
	}

	registry.txCounter++
	payload := strconv.AppendUint(append([]byte{}, tx.Data...), registry.txCounter, 10)
	return hash.HashHex(payload), nil
}
