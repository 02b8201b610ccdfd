package repositories

import "gorm.io/gorm"

var GlobalCandidateRepository CandidateRepository
var GlobalElectionRepository ElectionRepository

func InitializeGlobalRepositories(db *gorm.DB) error {
	if GlobalCandidateRepository == nil {
		GlobalCandidateRepository = NewCandidateRepositoryImpl(db)
	}

	if GlobalElectionRepository == nil {
		GlobalElectionRepository = NewElectionRepositoryImpl(db)
	}

	return nil
}
