package db_models

type CandidateDB struct {
	LocalId          string `gorm:"primaryKey;column:local_id"`
	ChainCandidateId *int64 `gorm:"column:chain_candidate_id"`
	Name             string `gorm:"column:name;not null"`
	Seat             string `gorm:"column:seat;not null"`
	Party            string `gorm:"column:party"`
	Position         string `gorm:"column:position"`
	Bio              string `gorm:"column:bio"`
	Manifesto        string `gorm:"column:manifesto"`
	PhotoUrl         string `gorm:"column:photo_url"`
	IsActive         bool   `gorm:"column:is_active;not null"`
	ElectionId       string `gorm:"column:election_id;not null;index"`

	Election ElectionDB `gorm:"foreignKey:ElectionId;references:Id;constraint:OnDelete:RESTRICT,OnUpdate:RESTRICT"`
}

func (CandidateDB) TableName() string {
	return "candidates"
}
