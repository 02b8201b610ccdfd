package reconcile_test

import (
	"context"
	"fmt"

	chain "github.com/ballotsync/ballotsync/internal/chain"
	repositories "github.com/ballotsync/ballotsync/internal/database/repositories"
	models "github.com/ballotsync/ballotsync/internal/models"
)

type candidateRepositoryMock struct {
	candidates map[string]*models.Candidate
	counter    int
}

func newCandidateRepositoryMock() *candidateRepositoryMock {
	return &candidateRepositoryMock{candidates: make(map[string]*models.Candidate)}
}

func (repo *candidateRepositoryMock) Create(candidate *models.Candidate) error {
	if candidate.LocalId == "" {
		repo.counter++
		candidate.LocalId = fmt.Sprintf("local-%d", repo.counter)
	}

	copied := *candidate
	repo.candidates[candidate.LocalId] = &copied
	return nil
}

func (repo *candidateRepositoryMock) Update(localId string, fields *models.CandidateFields) error {
	candidate, ok := repo.candidates[localId]
	if !ok {
		return repositories.ErrCandidateNotFound
	}

	candidate.Name = fields.Name
	candidate.Seat = fields.Seat
	candidate.Party = fields.Party
	candidate.Position = fields.Position
	candidate.Bio = fields.Bio
	candidate.Manifesto = fields.Manifesto
	candidate.PhotoUrl = fields.PhotoUrl
	candidate.IsActive = fields.IsActive
	return nil
}

func (repo *candidateRepositoryMock) SetChainCandidateId(localId string, chainCandidateId int64) error {
	candidate, ok := repo.candidates[localId]
	if !ok {
		return repositories.ErrCandidateNotFound
	}

	if candidate.ChainCandidateId != nil {
		return fmt.Errorf("chain candidate id already assigned")
	}

	candidate.ChainCandidateId = &chainCandidateId
	return nil
}

func (repo *candidateRepositoryMock) Delete(localId string) error {
	if _, ok := repo.candidates[localId]; !ok {
		return repositories.ErrCandidateNotFound
	}

	delete(repo.candidates, localId)
	return nil
}

func (repo *candidateRepositoryMock) Get(localId string) (*models.Candidate, error) {
	candidate, ok := repo.candidates[localId]
	if !ok {
		return nil, repositories.ErrCandidateNotFound
	}

	copied := *candidate
	return &copied, nil
}

func (repo *candidateRepositoryMock) List(electionId string) ([]*models.Candidate, error) {
	var candidates []*models.Candidate
	for i := 1; i <= repo.counter; i++ {
		candidate, ok := repo.candidates[fmt.Sprintf("local-%d", i)]
		if ok && candidate.ElectionId == electionId {
			copied := *candidate
			candidates = append(candidates, &copied)
		}
	}
	return candidates, nil
}

type electionRepositoryMock struct {
	elections map[string]*models.Election
}

func newElectionRepositoryMock() *electionRepositoryMock {
	return &electionRepositoryMock{elections: make(map[string]*models.Election)}
}

func (repo *electionRepositoryMock) Get(id string) (*models.Election, error) {
	election, ok := repo.elections[id]
	if !ok {
		return nil, repositories.ErrElectionNotFound
	}

	copied := *election
	return &copied, nil
}

func (repo *electionRepositoryMock) Create(election *models.Election) error {
	copied := *election
	repo.elections[election.Id] = &copied
	return nil
}

type chainClientMock struct {
	candidates   map[int64]*chain.ChainCandidate
	nextId       int64
	registerErr  error
	castVoteErr  error
	getCandidate int //call counter, for cache assertions
}

func newChainClientMock() *chainClientMock {
	return &chainClientMock{candidates: make(map[int64]*chain.ChainCandidate)}
}

func (client *chainClientMock) GetCandidate(ctx context.Context, chainCandidateId int64) (chain.ChainCandidate, error) {
	client.getCandidate++

	candidate, ok := client.candidates[chainCandidateId]
	if !ok {
		return chain.ChainCandidate{}, fmt.Errorf("no candidate with chain id %d", chainCandidateId)
	}

	return *candidate, nil
}

func (client *chainClientMock) RegisterCandidate(ctx context.Context, name string) (int64, error) {
	if client.registerErr != nil {
		return 0, client.registerErr
	}

	client.nextId++
	client.candidates[client.nextId] = &chain.ChainCandidate{Id: client.nextId, Name: name}
	return client.nextId, nil
}

func (client *chainClientMock) CastVote(ctx context.Context, chainCandidateId int64, voterAccount string) (string, error) {
	if client.castVoteErr != nil {
		return "", client.castVoteErr
	}

	candidate, ok := client.candidates[chainCandidateId]
	if !ok {
		return "", fmt.Errorf("no candidate with chain id %d", chainCandidateId)
	}

	candidate.VoteCount++
	return "0xreceipt", nil
}

func (client *chainClientMock) setVotes(chainCandidateId int64, votes int64) {
	candidate, ok := client.candidates[chainCandidateId]
	if ok {
		candidate.VoteCount = votes
	}
}
