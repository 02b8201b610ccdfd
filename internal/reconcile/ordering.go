package reconcile

import (
	"sort"
	"strings"

	models "github.com/ballotsync/ballotsync/internal/models"
)

// Fixed seat-priority ranking used whenever a roster is presented for action.
var seatPriority = map[string]int{
	"president":      0,
	"vice president": 1,
	"secretary":      2,
	"treasurer":      3,
}

const (
	seatRankRepresentative = 4
	seatRankOther          = 5
)

func seatRank(seat string) int {
	normalized := strings.ToLower(strings.TrimSpace(seat))

	if rank, ok := seatPriority[normalized]; ok {
		return rank
	}

	if strings.Contains(normalized, "representative") {
		return seatRankRepresentative
	}

	return seatRankOther
}

// SortCandidateViews orders a roster by seat priority, then vote count
// descending, then candidate name case-insensitive ascending.
func SortCandidateViews(views []*models.CandidateView) {
	sort.SliceStable(views, func(i, j int) bool {
		rankI := seatRank(views[i].Candidate.Seat)
		rankJ := seatRank(views[j].Candidate.Seat)
		if rankI != rankJ {
			return rankI < rankJ
		}

		if views[i].Votes != views[j].Votes {
			return views[i].Votes > views[j].Votes
		}

		nameI := strings.ToLower(views[i].Candidate.Name)
		nameJ := strings.ToLower(views[j].Candidate.Name)
		return nameI < nameJ
	})
}
