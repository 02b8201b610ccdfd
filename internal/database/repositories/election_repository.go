package repositories

import (
	"errors"

	db_models "github.com/ballotsync/ballotsync/internal/database/models"
	mapping "github.com/ballotsync/ballotsync/internal/mapping"
	models "github.com/ballotsync/ballotsync/internal/models"
	"gorm.io/gorm"
)

var ErrElectionNotFound = errors.New("election not found")

// ElectionRepository reads elections, which are owned by an external system.
// Create exists for seeding and tests only; the core never mutates elections.
type ElectionRepository interface {
	Get(id string) (*models.Election, error)
	Create(election *models.Election) error
}

type ElectionRepositoryImpl struct {
	db *gorm.DB
}

func NewElectionRepositoryImpl(db *gorm.DB) *ElectionRepositoryImpl {
	return &ElectionRepositoryImpl{db: db}
}

func (repo *ElectionRepositoryImpl) Get(id string) (*models.Election, error) {
	electionDB := &db_models.ElectionDB{}
	result := repo.db.Where("id = ?", id).Find(electionDB)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrElectionNotFound
	}

	return mapping.ElectionDBToElection(electionDB), nil
}

func (repo *ElectionRepositoryImpl) Create(election *models.Election) error {
	electionDB := mapping.ElectionToElectionDB(election)
	return repo.db.Create(electionDB).Error
}
