package db_models

type ElectionDB struct {
	Id                  string `gorm:"primaryKey;column:id"`
	Name                string `gorm:"column:name;not null"`
	Seats               string `gorm:"column:seats;not null"` //comma separated declared seat set
	CandidateListLocked bool   `gorm:"column:candidate_list_locked;not null"`

	Candidates []CandidateDB `gorm:"foreignKey:ElectionId;references:Id;constraint:OnDelete:RESTRICT,OnUpdate:RESTRICT"`
}

func (ElectionDB) TableName() string {
	return "elections"
}
