package analytics

import (
	"sort"
	"time"

	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// Velocity detection defaults: a BIN is flagged when 3 or more of its
// transactions fall within a 10-minute radius of any one of them.
const (
	DefaultVelocityWindow    = 10 * time.Minute
	DefaultVelocityThreshold = 3
	DefaultVelocityLimit     = 10
)

// VelocityConfig tunes the velocity detector.
type VelocityConfig struct {
	Window    time.Duration // time radius around each transaction
	Threshold int           // minimum score for a BIN to be flagged
	Limit     int           // maximum number of flagged BINs returned
}

// DefaultVelocityConfig returns the shipped detection parameters.
func DefaultVelocityConfig() VelocityConfig {
	return VelocityConfig{
		Window:    DefaultVelocityWindow,
		Threshold: DefaultVelocityThreshold,
		Limit:     DefaultVelocityLimit,
	}
}

// DetectVelocity finds card BINs exhibiting rapid repeated use.
//
// For every transaction in a BIN group the detector counts the group's
// transactions (itself included) whose timestamps lie strictly within
// cfg.Window of it, on either side. The group's velocity score is the
// maximum such count. Note this is a symmetric radius around each point,
// not a forward-sliding window: a group can score high even when no single
// window-length interval contains that many transactions, because a middle
// point can see dense neighbors on both sides. Downstream flagging depends
// on this exact behavior.
//
// Flagged groups (score >= cfg.Threshold) are returned sorted by descending
// score, then descending total, then ascending BIN, truncated to cfg.Limit.
// Transactions inside each group stay in chronological order.
//
// Cost is O(n^2) per group; batches are bounded so this is acceptable. A
// two-pointer pass over the sorted group would reach O(n log n) with
// identical results if it ever matters.
func DetectVelocity(s Snapshot, cfg VelocityConfig) []models.VelocityGroup {
	groups := groupByBIN(s.Transactions())

	flagged := make([]models.VelocityGroup, 0, len(groups))
	for bin, txns := range groups {
		score := velocityScore(txns, cfg.Window)
		if score < cfg.Threshold {
			continue
		}
		flagged = append(flagged, models.VelocityGroup{
			BIN:          bin,
			Total:        len(txns),
			Velocity:     score,
			Transactions: txns,
		})
	}

	sort.Slice(flagged, func(i, j int) bool {
		if flagged[i].Velocity != flagged[j].Velocity {
			return flagged[i].Velocity > flagged[j].Velocity
		}
		if flagged[i].Total != flagged[j].Total {
			return flagged[i].Total > flagged[j].Total
		}
		return flagged[i].BIN < flagged[j].BIN
	})

	if cfg.Limit > 0 && len(flagged) > cfg.Limit {
		flagged = flagged[:cfg.Limit]
	}
	return flagged
}

// velocityScore returns the largest neighborhood count in the group.
func velocityScore(txns []models.Transaction, window time.Duration) int {
	max := 0
	for _, t := range txns {
		count := 0
		for _, u := range txns {
			d := u.Timestamp.Sub(t.Timestamp)
			if d < 0 {
				d = -d
			}
			if d < window {
				count++
			}
		}
		if count > max {
			max = count
		}
	}
	return max
}

// ApplyVelocityFlags returns a copy of the snapshot's transactions with
// VelocityFlag set on every transaction belonging to a flagged BIN. Used
// when the feed did not classify velocity upstream, so that risk
// classification sees the detector's result. The snapshot itself is not
// modified.
func ApplyVelocityFlags(s Snapshot, flagged []models.VelocityGroup) []models.Transaction {
	bins := make(map[string]struct{}, len(flagged))
	for _, g := range flagged {
		bins[g.BIN] = struct{}{}
	}

	src := s.Transactions()
	out := make([]models.Transaction, len(src))
	copy(out, src)
	for i := range out {
		if _, ok := bins[out[i].CardBIN]; ok {
			out[i].VelocityFlag = true
		}
	}
	return out
}
