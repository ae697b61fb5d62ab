package analytics

import (
	"math"

	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// Summarize computes the headline dashboard numbers for a snapshot.
// The approval rate is a round-half-up percentage of approved transactions;
// an empty snapshot reports rate 0.
func Summarize(s Snapshot) models.Summary {
	var sum models.Summary
	for _, t := range s.Transactions() {
		sum.Total++
		if t.Status == models.StatusApproved {
			sum.Approved++
		}
		if t.GeoMismatch {
			sum.GeoMismatches++
		}
		if t.VelocityFlag {
			sum.VelocityFlags++
		}
		if t.CardTestFlag {
			sum.CardTestFlags++
		}
	}
	if sum.Total > 0 {
		sum.ApprovalRate = int(math.Round(100 * float64(sum.Approved) / float64(sum.Total)))
	}
	return sum
}
