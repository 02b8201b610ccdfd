package reconcile

import (
	"context"
	"fmt"
	"log"
	"sync"

	chain "github.com/ballotsync/ballotsync/internal/chain"
	repositories "github.com/ballotsync/ballotsync/internal/database/repositories"
	errs "github.com/ballotsync/ballotsync/internal/errors"
	models "github.com/ballotsync/ballotsync/internal/models"
	structures "github.com/ballotsync/ballotsync/internal/structures"
)

// ChainClient is the on-chain surface the service reconciles against.
type ChainClient interface {
	GetCandidate(ctx context.Context, chainCandidateId int64) (chain.ChainCandidate, error)
	RegisterCandidate(ctx context.Context, name string) (int64, error)
	CastVote(ctx context.Context, chainCandidateId int64, voterAccount string) (string, error)
}

const voteCacheCapacity = 1024

// ReconciliationService is the single authority through which every candidate
// mutation must pass. It merges off-chain metadata with on-chain identity and
// vote counts, and enforces the lock, seat and vote-count invariants before
// delegating to the store and the chain client.
//
// The two stores are not joined by a transaction. The off-chain record is the
// durable record of admin intent; on-chain registration is a best-effort
// follow-up that is never rolled back and never silently retried. When the
// chain side fails the caller gets a PartialSyncError naming the off-chain id
// and is expected to resync explicitly.
type ReconciliationService struct {
	candidates repositories.CandidateRepository
	elections  repositories.ElectionRepository
	chain      ChainClient

	voteCacheMutex sync.Mutex
	voteCache      *structures.Cache[int64, int64]
}

func NewReconciliationService(candidates repositories.CandidateRepository, elections repositories.ElectionRepository, chainClient ChainClient) *ReconciliationService {
	return &ReconciliationService{
		candidates: candidates,
		elections:  elections,
		chain:      chainClient,
		voteCache:  structures.NewCache[int64, int64](voteCacheCapacity),
	}
}

// AddCandidate creates the off-chain record, then attempts on-chain
// registration. On chain failure the off-chain record is retained unsynced
// rather than rolled back, and the returned error is a PartialSyncError
// naming it.
func (service *ReconciliationService) AddCandidate(ctx context.Context, electionId string, fields *models.CandidateFields) (*models.Candidate, error) {
	election, err := service.elections.Get(electionId)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve election %s: %w", electionId, err)
	}

	if election.CandidateListLocked {
		return nil, &errs.LockedElectionError{ElectionId: electionId}
	}

	if err := validateFields(election, fields); err != nil {
		return nil, err
	}

	candidate := &models.Candidate{
		Name:       fields.Name,
		Seat:       fields.Seat,
		Party:      fields.Party,
		Position:   fields.Position,
		Bio:        fields.Bio,
		Manifesto:  fields.Manifesto,
		PhotoUrl:   fields.PhotoUrl,
		IsActive:   fields.IsActive,
		ElectionId: electionId,
	}

	if err := service.candidates.Create(candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate off-chain: %w", err)
	}

	chainCandidateId, err := service.chain.RegisterCandidate(ctx, candidate.Name)
	if err != nil {
		log.Printf("|Reconcile| Candidate %s created off-chain but chain registration failed: %v", candidate.LocalId, err)
		return candidate, &errs.PartialSyncError{LocalId: candidate.LocalId, Cause: err}
	}

	service.invalidateVotes()

	if err := service.candidates.SetChainCandidateId(candidate.LocalId, chainCandidateId); err != nil {
		return candidate, &errs.PartialSyncError{LocalId: candidate.LocalId, Cause: err}
	}

	candidate.ChainCandidateId = &chainCandidateId
	return candidate, nil
}

// UpdateCandidate rewrites the mutable off-chain fields. The chain candidate
// id, once assigned, is never altered by this operation.
func (service *ReconciliationService) UpdateCandidate(ctx context.Context, localId string, fields *models.CandidateFields) (*models.Candidate, error) {
	candidate, err := service.candidates.Get(localId)
	if err != nil {
		return nil, err
	}

	election, err := service.elections.Get(candidate.ElectionId)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve election %s: %w", candidate.ElectionId, err)
	}

	if election.CandidateListLocked {
		return nil, &errs.LockedElectionError{ElectionId: election.Id}
	}

	if err := validateFields(election, fields); err != nil {
		return nil, err
	}

	if err := service.candidates.Update(localId, fields); err != nil {
		return nil, err
	}

	return service.candidates.Get(localId)
}

// DeleteCandidate removes the off-chain record. A candidate whose resolved
// on-chain vote count is greater than zero cannot be deleted; the on-chain
// record, if any, is left untouched since the chain is append-only.
func (service *ReconciliationService) DeleteCandidate(ctx context.Context, localId string) error {
	candidate, err := service.candidates.Get(localId)
	if err != nil {
		return err
	}

	election, err := service.elections.Get(candidate.ElectionId)
	if err != nil {
		return fmt.Errorf("failed to resolve election %s: %w", candidate.ElectionId, err)
	}

	if election.CandidateListLocked {
		return &errs.LockedElectionError{ElectionId: election.Id}
	}

	if candidate.Synced() {
		votes, err := service.resolveVotes(ctx, *candidate.ChainCandidateId)
		if err != nil {
			return fmt.Errorf("failed to resolve vote count for candidate %s: %w", localId, err)
		}

		if votes > 0 {
			return &errs.HasVotesError{LocalId: localId, Votes: votes}
		}
	}

	return service.candidates.Delete(localId)
}

// ListWithVotes merges the off-chain roster with on-chain vote counts.
// Unsynced candidates are returned with zero votes and a false synced marker.
// The returned roster is ordered by seat priority, then votes descending,
// then name ascending.
func (service *ReconciliationService) ListWithVotes(ctx context.Context, electionId string) ([]*models.CandidateView, error) {
	candidates, err := service.candidates.List(electionId)
	if err != nil {
		return nil, err
	}

	views := make([]*models.CandidateView, 0, len(candidates))
	for _, candidate := range candidates {
		view := &models.CandidateView{Candidate: candidate}

		if candidate.Synced() {
			votes, err := service.resolveVotes(ctx, *candidate.ChainCandidateId)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve vote count for candidate %s: %w", candidate.LocalId, err)
			}
			view.Votes = votes
			view.Synced = true
		}

		views = append(views, view)
	}

	SortCandidateViews(views)
	return views, nil
}

// ResyncCandidate completes the on-chain half of a partially synced
// candidate. It is the explicit retry path after a PartialSyncError.
func (service *ReconciliationService) ResyncCandidate(ctx context.Context, localId string) (*models.Candidate, error) {
	candidate, err := service.candidates.Get(localId)
	if err != nil {
		return nil, err
	}

	if candidate.Synced() {
		return nil, &errs.ValidationError{Field: "chainCandidateId", Reason: "already assigned"}
	}

	election, err := service.elections.Get(candidate.ElectionId)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve election %s: %w", candidate.ElectionId, err)
	}

	if election.CandidateListLocked {
		return nil, &errs.LockedElectionError{ElectionId: election.Id}
	}

	chainCandidateId, err := service.chain.RegisterCandidate(ctx, candidate.Name)
	if err != nil {
		return nil, &errs.PartialSyncError{LocalId: localId, Cause: err}
	}

	service.invalidateVotes()

	if err := service.candidates.SetChainCandidateId(localId, chainCandidateId); err != nil {
		return nil, &errs.PartialSyncError{LocalId: localId, Cause: err}
	}

	log.Printf("|Reconcile| Resynced candidate %s as chain id %d", localId, chainCandidateId)

	candidate.ChainCandidateId = &chainCandidateId
	return candidate, nil
}

// CastVote submits a vote for a synced candidate and invalidates the vote
// projection.
func (service *ReconciliationService) CastVote(ctx context.Context, localId string, voterAccount string) (string, error) {
	candidate, err := service.candidates.Get(localId)
	if err != nil {
		return "", err
	}

	if !candidate.Synced() {
		return "", &errs.ValidationError{Field: "chainCandidateId", Reason: "candidate is not registered on-chain"}
	}

	receipt, err := service.chain.CastVote(ctx, *candidate.ChainCandidateId, voterAccount)
	if err != nil {
		return "", err
	}

	service.invalidateVotes()
	return receipt, nil
}

// resolveVotes is a read-through cache over the chain client, keyed by chain
// candidate id and cleared on every mutating chain call.
func (service *ReconciliationService) resolveVotes(ctx context.Context, chainCandidateId int64) (int64, error) {
	service.voteCacheMutex.Lock()
	votes, cached := service.voteCache.Get(chainCandidateId)
	service.voteCacheMutex.Unlock()

	if cached {
		return votes, nil
	}

	chainCandidate, err := service.chain.GetCandidate(ctx, chainCandidateId)
	if err != nil {
		return 0, err
	}

	service.voteCacheMutex.Lock()
	service.voteCache.Put(chainCandidateId, chainCandidate.VoteCount)
	service.voteCacheMutex.Unlock()

	return chainCandidate.VoteCount, nil
}

func (service *ReconciliationService) invalidateVotes() {
	service.voteCacheMutex.Lock()
	defer service.voteCacheMutex.Unlock()

	service.voteCache.Clear()
}

func validateFields(election *models.Election, fields *models.CandidateFields) error {
	if fields.Name == "" {
		return &errs.ValidationError{Field: "name", Reason: "is required"}
	}

	if fields.Seat == "" {
		return &errs.ValidationError{Field: "seat", Reason: "is required"}
	}

	if !election.HasSeat(fields.Seat) {
		return &errs.ValidationError{Field: "seat", Reason: fmt.Sprintf("%q is not a declared seat of election %s", fields.Seat, election.Id)}
	}

	return nil
}
