package models

import "strings"

// Election is an external collaborator referenced read-only by the core.
// Seats is the declared seat set; every candidate's seat must belong to it.
// When CandidateListLocked is true every candidate mutation for this election
// is rejected, regardless of caller role.
type Election struct {
	Id                  string
	Name                string
	Seats               []string
	CandidateListLocked bool
}

// HasSeat reports whether seat belongs to the election's declared seat set.
// Comparison is case-insensitive.
func (election *Election) HasSeat(seat string) bool {
	for _, s := range election.Seats {
		if strings.EqualFold(s, seat) {
			return true
		}
	}
	return false
}
