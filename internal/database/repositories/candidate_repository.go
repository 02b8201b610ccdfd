package repositories

import (
	"errors"
	"fmt"

	db_models "github.com/ballotsync/ballotsync/internal/database/models"
	mapping "github.com/ballotsync/ballotsync/internal/mapping"
	models "github.com/ballotsync/ballotsync/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateRepository is the off-chain store for mutable candidate metadata.
// It is a plain keyed map with uniqueness on local id and referential
// integrity on election id; lock and vote-count invariants are enforced one
// layer up, in the reconciliation service.
type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	Update(localId string, fields *models.CandidateFields) error
	SetChainCandidateId(localId string, chainCandidateId int64) error
	Delete(localId string) error
	Get(localId string) (*models.Candidate, error)
	List(electionId string) ([]*models.Candidate, error)
}

type CandidateRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateRepositoryImpl(db *gorm.DB) *CandidateRepositoryImpl {
	return &CandidateRepositoryImpl{db: db}
}

// Create inserts the candidate, minting its local id. Local ids are uuids and
// are never reused.
func (repo *CandidateRepositoryImpl) Create(candidate *models.Candidate) error {
	if candidate.LocalId == "" {
		candidate.LocalId = uuid.NewString()
	}

	candidateDB := mapping.CandidateToCandidateDB(candidate)
	return repo.db.Create(candidateDB).Error
}

// Update rewrites the mutable metadata columns. The chain candidate id column
// is deliberately not touched: identity is immutable once minted.
func (repo *CandidateRepositoryImpl) Update(localId string, fields *models.CandidateFields) error {
	result := repo.db.Model(&db_models.CandidateDB{}).
		Where("local_id = ?", localId).
		Updates(map[string]any{
			"name":      fields.Name,
			"seat":      fields.Seat,
			"party":     fields.Party,
			"position":  fields.Position,
			"bio":       fields.Bio,
			"manifesto": fields.Manifesto,
			"photo_url": fields.PhotoUrl,
			"is_active": fields.IsActive,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}

	return nil
}

// SetChainCandidateId assigns the chain identity exactly once. Assigning over
// an existing id fails.
func (repo *CandidateRepositoryImpl) SetChainCandidateId(localId string, chainCandidateId int64) error {
	result := repo.db.Model(&db_models.CandidateDB{}).
		Where("local_id = ? AND chain_candidate_id IS NULL", localId).
		Update("chain_candidate_id", chainCandidateId)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate %s not found or chain candidate id already assigned", localId)
	}

	return nil
}

func (repo *CandidateRepositoryImpl) Delete(localId string) error {
	result := repo.db.Where("local_id = ?", localId).Delete(&db_models.CandidateDB{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}

	return nil
}

func (repo *CandidateRepositoryImpl) Get(localId string) (*models.Candidate, error) {
	candidateDB := &db_models.CandidateDB{}
	result := repo.db.Where("local_id = ?", localId).Find(candidateDB)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrCandidateNotFound
	}

	return mapping.CandidateDBToCandidate(candidateDB), nil
}

func (repo *CandidateRepositoryImpl) List(electionId string) ([]*models.Candidate, error) {
	var candidatesDB []*db_models.CandidateDB
	result := repo.db.Where("election_id = ?", electionId).Find(&candidatesDB)

	if result.Error != nil {
		return nil, result.Error
	}

	candidates := make([]*models.Candidate, len(candidatesDB))
	for i, candidateDB := range candidatesDB {
		candidates[i] = mapping.CandidateDBToCandidate(candidateDB)
	}

	return candidates, nil
}
