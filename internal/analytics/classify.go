package analytics

import "github.com/lunara-travel/fraud-monitor/internal/models"

// Classifier maps transaction flags to a risk level. The high-risk BIN set
// is fixed at construction.
type Classifier struct {
	highRiskBINs map[string]struct{}
}

// NewClassifier builds a classifier with the given high-risk BIN set.
// A nil or empty set disables the BIN rule.
func NewClassifier(highRiskBINs []string) *Classifier {
	set := make(map[string]struct{}, len(highRiskBINs))
	for _, bin := range highRiskBINs {
		set[bin] = struct{}{}
	}
	return &Classifier{highRiskBINs: set}
}

// Classify returns the risk level for a transaction. Rules are evaluated
// top to bottom and the first match wins:
//
//  1. high:   velocity or card-testing flag set
//  2. medium: geo mismatch, or BIN in the high-risk set
//  3. low:    otherwise
func (c *Classifier) Classify(t models.Transaction) models.RiskLevel {
	if t.VelocityFlag || t.CardTestFlag {
		return models.RiskHigh
	}
	if t.GeoMismatch {
		return models.RiskMedium
	}
	if _, ok := c.highRiskBINs[t.CardBIN]; ok {
		return models.RiskMedium
	}
	return models.RiskLow
}
