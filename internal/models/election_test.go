package models_test

import (
	"testing"

	models "github.com/ballotsync/ballotsync/internal/models"
)

func getTestElection() *models.Election {
	return &models.Election{
		Id:    "election-1",
		Name:  "Student Council 2026",
		Seats: []string{"President", "Vice President", "Secretary"},
	}
}

func TestHasSeat(t *testing.T) {
	election := getTestElection()

	if !election.HasSeat("President") {
		t.Fatalf("expected declared seat to be found")
	}

	if !election.HasSeat("president") {
		t.Fatalf("expected seat lookup to be case-insensitive")
	}

	if election.HasSeat("Chancellor") {
		t.Fatalf("expected undeclared seat to be rejected")
	}
}

func TestCandidateSynced(t *testing.T) {
	candidate := &models.Candidate{Name: "Alice"}

	if candidate.Synced() {
		t.Fatalf("expected candidate without chain id to be unsynced")
	}

	chainId := int64(3)
	candidate.ChainCandidateId = &chainId

	if !candidate.Synced() {
		t.Fatalf("expected candidate with chain id to be synced")
	}
}
