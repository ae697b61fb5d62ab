package models

// RiskLevel labels the fraud risk of a single transaction.
type RiskLevel string

// Risk levels in decreasing order of severity.
const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// DefaultHighRiskBINs are card ranges with a known fraud history. The set is
// configurable via APP_HIGH_RISK_BINS; these are the shipped defaults.
var DefaultHighRiskBINs = []string{"492182", "455301", "601100"}
