package analytics

import "github.com/lunara-travel/fraud-monitor/internal/models"

// DefaultInspectLimit caps the geo-inspector listing.
const DefaultInspectLimit = 100

// Inspect produces the geo-inspector rows: the newest transactions first,
// optionally restricted to geo mismatches, each paired with its risk level.
// At most limit rows are returned.
func Inspect(s Snapshot, mismatchOnly bool, limit int, c *Classifier) []models.RiskTransaction {
	txns := s.Transactions()

	rows := make([]models.RiskTransaction, 0, limit)
	for i := len(txns) - 1; i >= 0; i-- {
		t := txns[i]
		if mismatchOnly && !t.GeoMismatch {
			continue
		}
		rows = append(rows, models.RiskTransaction{Transaction: t, Risk: c.Classify(t)})
		if limit > 0 && len(rows) == limit {
			break
		}
	}
	return rows
}
