package models

// Candidate is the off-chain record of a ballot candidate. LocalId is the
// stable internal key, assigned at creation and never reused.
// ChainCandidateId is minted by the on-chain registry at first successful
// registration and is immutable from then on; nil means the record has not
// been synchronized to the chain yet.
type Candidate struct {
	LocalId          string
	ChainCandidateId *int64
	Name             string
	Seat             string
	Party            string
	Position         string
	Bio              string
	Manifesto        string
	PhotoUrl         string
	IsActive         bool
	ElectionId       string
}

// Synced reports whether the candidate has an on-chain identity.
func (candidate *Candidate) Synced() bool {
	return candidate.ChainCandidateId != nil
}

// CandidateView is a Candidate merged with its on-chain vote count for
// display. Votes is a derived projection, never persisted off-chain; for an
// unsynced candidate it is always zero.
type CandidateView struct {
	Candidate *Candidate
	Votes     int64
	Synced    bool
}

// CandidateFields carries the mutable off-chain fields passed to create and
// update operations.
type CandidateFields struct {
	Name      string
	Seat      string
	Party     string
	Position  string
	Bio       string
	Manifesto string
	PhotoUrl  string
	IsActive  bool
}
