// Package analytics computes fraud-relevant signals from a snapshot of
// payment transactions: risk classification, velocity-attack detection,
// BIN decline-rate ranking, hourly volume bucketing, and related-transaction
// lookup. Every function is pure and deterministic over an immutable
// snapshot, so results are safe to compute concurrently and to memoize by
// snapshot version.
package analytics

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// ErrTransactionNotFound is returned when a lookup target is not present in
// the supplied snapshot.
var ErrTransactionNotFound = errors.New("transaction not found in snapshot")

// Snapshot is an immutable, timestamp-ascending collection of transactions.
// Filtered views are new snapshots; the underlying records are shared and
// never mutated.
type Snapshot struct {
	txns   []models.Transaction
	filter string
}

// NewSnapshot wraps an already-ordered transaction collection. The caller
// guarantees ascending timestamps; the feed returns them that way.
func NewSnapshot(txns []models.Transaction) Snapshot {
	return Snapshot{txns: txns, filter: "all"}
}

// Transactions returns the underlying records in chronological order.
// Callers must treat the slice as read-only.
func (s Snapshot) Transactions() []models.Transaction {
	return s.txns
}

// Len returns the number of transactions in the snapshot.
func (s Snapshot) Len() int {
	return len(s.txns)
}

// FilterStatus returns a new snapshot containing only transactions with the
// given status. An empty status or "all" returns the receiver unchanged.
func (s Snapshot) FilterStatus(status string) Snapshot {
	if status == "" || status == "all" {
		return s
	}
	filtered := make([]models.Transaction, 0, len(s.txns))
	for _, t := range s.txns {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return Snapshot{txns: filtered, filter: status}
}

// Version identifies the snapshot contents for cache keying: the filter,
// the length, and a digest over every record's report-relevant fields.
// Ingestion replays an UPSERT, so a re-delivered event can rewrite a
// mid-stream row without changing length or the newest timestamp; folding
// each row's content into the digest makes any such rewrite miss the cache
// instead of serving the report computed before it.
func (s Snapshot) Version() string {
	if len(s.txns) == 0 {
		return fmt.Sprintf("%s:empty", s.filter)
	}
	h := fnv.New64a()
	for _, t := range s.txns {
		fmt.Fprintf(h, "%s|%d|%s|%g|%s|%t|%t|%t;",
			t.ID, t.Timestamp.UTC().UnixNano(), t.Status, t.Amount,
			t.CardBIN, t.GeoMismatch, t.VelocityFlag, t.CardTestFlag)
	}
	return fmt.Sprintf("%s:%d:%016x", s.filter, len(s.txns), h.Sum64())
}

// groupByBIN builds the BIN -> transactions mapping shared by the velocity
// detector, the BIN aggregator, and the related lookup. Group members keep
// the snapshot's chronological order.
func groupByBIN(txns []models.Transaction) map[string][]models.Transaction {
	groups := make(map[string][]models.Transaction)
	for _, t := range txns {
		groups[t.CardBIN] = append(groups[t.CardBIN], t)
	}
	return groups
}
