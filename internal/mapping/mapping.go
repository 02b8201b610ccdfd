package mapping

import (
	"strings"

	db_models "github.com/ballotsync/ballotsync/internal/database/models"
	models "github.com/ballotsync/ballotsync/internal/models"
)

func CandidateToCandidateDB(candidate *models.Candidate) *db_models.CandidateDB {
	var chainCandidateId *int64

	if candidate.ChainCandidateId != nil {
		copyId := *candidate.ChainCandidateId
		chainCandidateId = &copyId
	}

	return &db_models.CandidateDB{
		LocalId:          candidate.LocalId,
		ChainCandidateId: chainCandidateId,
		Name:             candidate.Name,
		Seat:             candidate.Seat,
		Party:            candidate.Party,
		Position:         candidate.Position,
		Bio:              candidate.Bio,
		Manifesto:        candidate.Manifesto,
		PhotoUrl:         candidate.PhotoUrl,
		IsActive:         candidate.IsActive,
		ElectionId:       candidate.ElectionId,
	}
}

func CandidateDBToCandidate(candidateDB *db_models.CandidateDB) *models.Candidate {
	var chainCandidateId *int64

	if candidateDB.ChainCandidateId != nil {
		copyId := *candidateDB.ChainCandidateId
		chainCandidateId = &copyId
	}

	return &models.Candidate{
		LocalId:          candidateDB.LocalId,
		ChainCandidateId: chainCandidateId,
		Name:             candidateDB.Name,
		Seat:             candidateDB.Seat,
		Party:            candidateDB.Party,
		Position:         candidateDB.Position,
		Bio:              candidateDB.Bio,
		Manifesto:        candidateDB.Manifesto,
		PhotoUrl:         candidateDB.PhotoUrl,
		IsActive:         candidateDB.IsActive,
		ElectionId:       candidateDB.ElectionId,
	}
}

func ElectionToElectionDB(election *models.Election) *db_models.ElectionDB {
	return &db_models.ElectionDB{
		Id:                  election.Id,
		Name:                election.Name,
		Seats:               strings.Join(election.Seats, ","),
		CandidateListLocked: election.CandidateListLocked,
	}
}

func ElectionDBToElection(electionDB *db_models.ElectionDB) *models.Election {
	var seats []string
	if electionDB.Seats != "" {
		seats = strings.Split(electionDB.Seats, ",")
	}

	return &models.Election{
		Id:                  electionDB.Id,
		Name:                electionDB.Name,
		Seats:               seats,
		CandidateListLocked: electionDB.CandidateListLocked,
	}
}
