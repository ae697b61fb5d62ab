package analytics

import "github.com/lunara-travel/fraud-monitor/internal/models"

// DefaultRelatedLimit caps the related-transaction drill-down.
const DefaultRelatedLimit = 8

// Related returns other transactions sharing the card BIN of the
// transaction with the given id, in chronological order, capped at limit.
// The target itself is excluded. If the id is not present in the snapshot,
// ErrTransactionNotFound is returned; a transaction with no siblings yields
// an empty (non-nil) slice.
func Related(s Snapshot, id string, limit int) ([]models.Transaction, error) {
	var target *models.Transaction
	for i := range s.txns {
		if s.txns[i].ID == id {
			target = &s.txns[i]
			break
		}
	}
	if target == nil {
		return nil, ErrTransactionNotFound
	}

	related := make([]models.Transaction, 0, limit)
	for _, t := range s.txns {
		if t.CardBIN != target.CardBIN || t.ID == id {
			continue
		}
		related = append(related, t)
		if limit > 0 && len(related) == limit {
			break
		}
	}
	return related, nil
}
