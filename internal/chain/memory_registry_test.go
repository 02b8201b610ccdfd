package chain_test

import (
	"context"
	"testing"

	chain "github.com/ballotsync/ballotsync/internal/chain"
	wallet "github.com/ballotsync/ballotsync/internal/wallet"
)

func addCandidateTx(name string) wallet.Transaction {
	return wallet.Transaction{
		From: "0xabc",
		To:   "0xregistry",
		Data: chain.EncodeAddCandidate(name),
	}
}

func voteTx(id int64) wallet.Transaction {
	return wallet.Transaction{
		From: "0xabc",
		To:   "0xregistry",
		Data: chain.EncodeVote(id),
	}
}

func TestApplyAddCandidateMintsContiguousIds(t *testing.T) {
	registry := chain.NewMemoryRegistry()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		if _, err := registry.ApplyTransaction(addCandidateTx(name)); err != nil {
			t.Fatalf("addCandidate failed: %v", err)
		}
	}

	count, err := registry.CandidatesCount(context.Background())
	if err != nil {
		t.Fatalf("candidates count failed: %v", err)
	}

	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}

	for index := int64(1); index <= count; index++ {
		candidate, err := registry.GetCandidate(context.Background(), index)
		if err != nil {
			t.Fatalf("get candidate %d failed: %v", index, err)
		}

		if candidate.Id != index {
			t.Fatalf("expected id %d at index %d, got %d", index, index, candidate.Id)
		}
	}
}

func TestGetCandidateOutOfRange(t *testing.T) {
	registry := chain.NewMemoryRegistry()

	if _, err := registry.ApplyTransaction(addCandidateTx("Alice")); err != nil {
		t.Fatalf("addCandidate failed: %v", err)
	}

	if _, err := registry.GetCandidate(context.Background(), 0); err == nil {
		t.Fatalf("expected error for index 0")
	}

	if _, err := registry.GetCandidate(context.Background(), 2); err == nil {
		t.Fatalf("expected error for index past count")
	}
}

func TestApplyVoteIncrementsTally(t *testing.T) {
	registry := chain.NewMemoryRegistry()

	if _, err := registry.ApplyTransaction(addCandidateTx("Alice")); err != nil {
		t.Fatalf("addCandidate failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := registry.ApplyTransaction(voteTx(1)); err != nil {
			t.Fatalf("vote failed: %v", err)
		}
	}

	candidate, err := registry.GetCandidate(context.Background(), 1)
	if err != nil {
		t.Fatalf("get candidate failed: %v", err)
	}

	if candidate.VoteCount != 3 {
		t.Fatalf("expected 3 votes, got %d", candidate.VoteCount)
	}
}

func TestApplyVoteForUnknownCandidateFails(t *testing.T) {
	registry := chain.NewMemoryRegistry()

	if _, err := registry.ApplyTransaction(voteTx(1)); err == nil {
		t.Fatalf("expected error voting for unknown candidate")
	}
}

func TestApplyMalformedCallDataFails(t *testing.T) {
	registry := chain.NewMemoryRegistry()

	tx := wallet.Transaction{From: "0xabc", To: "0xregistry", Data: []byte("not json")}
	if _, err := registry.ApplyTransaction(tx); err == nil {
		t.Fatalf("expected error for malformed call data")
	}
}
