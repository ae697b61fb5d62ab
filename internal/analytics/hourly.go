package analytics

import (
	"time"

	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// HourlyVolume buckets the snapshot into the 24 hours of the day, counted
// by status. Hours are taken in loc (nil means UTC) so results are
// reproducible for a fixed reference. All 24 buckets are always emitted in
// order, zero-filled where no transactions fall; bucket totals sum exactly
// to the snapshot size.
func HourlyVolume(s Snapshot, loc *time.Location) []models.HourlyBucket {
	if loc == nil {
		loc = time.UTC
	}

	buckets := make([]models.HourlyBucket, 24)
	for i := range buckets {
		buckets[i].Hour = i
	}

	for _, t := range s.Transactions() {
		b := &buckets[t.Timestamp.In(loc).Hour()]
		switch t.Status {
		case models.StatusApproved:
			b.Approved++
		case models.StatusDeclined:
			b.Declined++
		case models.StatusPending:
			b.Pending++
		case models.StatusRefunded:
			b.Refunded++
		}
		b.Total++
	}
	return buckets
}
