package chain

import (
	"context"
	"fmt"
	"log"

	errs "github.com/ballotsync/ballotsync/internal/errors"
	wallet "github.com/ballotsync/ballotsync/internal/wallet"
)

// ChainRegistryClient reads candidate identities and vote counts from the
// on-chain registry and submits mutating calls through the wallet adapter.
// Reads are idempotent and side-effect free. Every mutation submits exactly
// one signed transaction and never retries: retrying on an ambiguous network
// response risks a duplicate on-chain effect, so ambiguity is surfaced to the
// caller instead.
type ChainRegistryClient struct {
	adapter         *wallet.Adapter
	registry        Registry
	contractAddress string
	expectedChainId int64
}

func NewChainRegistryClient(adapter *wallet.Adapter, registry Registry, contractAddress string, expectedChainId int64) *ChainRegistryClient {
	return &ChainRegistryClient{
		adapter:         adapter,
		registry:        registry,
		contractAddress: contractAddress,
		expectedChainId: expectedChainId,
	}
}

func (client *ChainRegistryClient) GetCandidateCount(ctx context.Context) (int64, error) {
	return client.registry.CandidatesCount(ctx)
}

// GetCandidate fetches the on-chain record at the given 1-based index.
// Registry ids coincide with their index, so the index doubles as the
// chain candidate id.
func (client *ChainRegistryClient) GetCandidate(ctx context.Context, index int64) (ChainCandidate, error) {
	return client.registry.GetCandidate(ctx, index)
}

// RegisterCandidate submits an addCandidate call and returns the id the
// registry minted for it. The id is resolved only after the submission is
// accepted, by re-reading the contiguous roster backwards for the submitted
// name; two concurrent registrations of the same name resolve to the most
// recent one.
func (client *ChainRegistryClient) RegisterCandidate(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, &errs.ValidationError{Field: "name", Reason: "is required"}
	}

	session, err := client.activeSession()
	if err != nil {
		return 0, err
	}

	tx := wallet.Transaction{
		From: session.Account,
		To:   client.contractAddress,
		Data: EncodeAddCandidate(name),
	}

	if _, err := client.adapter.Request(ctx, wallet.MethodSendTransaction, tx); err != nil {
		return 0, err
	}

	count, err := client.registry.CandidatesCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("registration submitted but roster read failed: %w", err)
	}

	for index := count; index >= 1; index-- {
		candidate, err := client.registry.GetCandidate(ctx, index)
		if err != nil {
			return 0, fmt.Errorf("registration submitted but roster read failed: %w", err)
		}
		if candidate.Name == name {
			log.Printf("|Chain| Registered candidate %q as chain id %d", name, candidate.Id)
			return candidate.Id, nil
		}
	}

	return 0, fmt.Errorf("registered candidate %q not found in roster of %d", name, count)
}

// CastVote submits a vote call for the given chain candidate id and returns
// the transaction hash as the receipt.
func (client *ChainRegistryClient) CastVote(ctx context.Context, chainCandidateId int64, voterAccount string) (string, error) {
	session, err := client.activeSession()
	if err != nil {
		return "", err
	}

	from := voterAccount
	if from == "" {
		from = session.Account
	}

	tx := wallet.Transaction{
		From: from,
		To:   client.contractAddress,
		Data: EncodeVote(chainCandidateId),
	}

	result, err := client.adapter.Request(ctx, wallet.MethodSendTransaction, tx)
	if err != nil {
		return "", err
	}

	receipt, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("unexpected transaction result %T", result)
	}

	return receipt, nil
}

// activeSession re-reads the wallet session immediately before a submission
// and checks it against the registry's expected chain.
func (client *ChainRegistryClient) activeSession() (wallet.Session, error) {
	session, ok := client.adapter.Session()
	if !ok {
		return wallet.Session{}, &errs.ProviderUnavailableError{Reason: "no active wallet session"}
	}

	if session.ChainId != client.expectedChainId {
		return wallet.Session{}, &errs.NetworkMismatchError{Have: session.ChainId, Want: client.expectedChainId}
	}

	return session, nil
}
