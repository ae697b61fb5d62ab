package analytics

import (
	"math"
	"sort"

	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// DefaultBINLimit caps the decline-rate ranking.
const DefaultBINLimit = 10

// RankBINsByDeclineRate groups the snapshot by card BIN and ranks the groups
// by the share of declined transactions, a proxy for compromised card
// ranges. The rate is a round-half-up percentage. Ordering is descending
// rate, then descending total, then ascending BIN; the result is truncated
// to limit entries. An empty snapshot yields an empty ranking.
func RankBINsByDeclineRate(s Snapshot, limit int) []models.BINStat {
	groups := groupByBIN(s.Transactions())

	stats := make([]models.BINStat, 0, len(groups))
	for bin, txns := range groups {
		declined := 0
		for _, t := range txns {
			if t.Status == models.StatusDeclined {
				declined++
			}
		}
		stats = append(stats, models.BINStat{
			BIN:         bin,
			Total:       len(txns),
			Declined:    declined,
			DeclineRate: declineRate(declined, len(txns)),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].DeclineRate != stats[j].DeclineRate {
			return stats[i].DeclineRate > stats[j].DeclineRate
		}
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].BIN < stats[j].BIN
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// declineRate computes round(100 * declined / total). A group always has at
// least one member, but the zero case is still treated as "no data".
func declineRate(declined, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(declined) / float64(total)))
}
