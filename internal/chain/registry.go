package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// ChainCandidate is the minimal on-chain identity of a candidate: the
// registry-minted id and the authoritative vote tally.
type ChainCandidate struct {
	Id        int64
	Name      string
	VoteCount int64
}

// Registry is the read side of the on-chain candidate registry contract.
// Indices are 1-based and contiguous from 1 to CandidatesCount; enumerating
// the full roster means iterating exactly that range.
type Registry interface {
	CandidatesCount(ctx context.Context) (int64, error)
	GetCandidate(ctx context.Context, index int64) (ChainCandidate, error)
}

// Contract method names understood by the registry.
const (
	contractMethodAddCandidate = "addCandidate"
	contractMethodVote         = "vote"
)

// callData is the encoded form of a contract call carried in a transaction
// payload.
type callData struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
}

func EncodeAddCandidate(name string) []byte {
	data, _ := json.Marshal(callData{
		Method: contractMethodAddCandidate,
		Params: []string{name},
	})
	return data
}

func EncodeVote(candidateId int64) []byte {
	data, _ := json.Marshal(callData{
		Method: contractMethodVote,
		Params: []string{strconv.FormatInt(candidateId, 10)},
	})
	return data
}

func decodeCallData(data []byte) (*callData, error) {
	call := &callData{}
	if err := json.Unmarshal(data, call); err != nil {
		return nil, fmt.Errorf("malformed contract call data: %w", err)
	}
	return call, nil
}
