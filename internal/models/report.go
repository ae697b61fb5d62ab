package models

// VelocityGroup describes a card BIN flagged for rapid repeated use.
// Velocity is the largest number of transactions on the BIN that fall within
// the detection radius of any single transaction.
type VelocityGroup struct {
	BIN          string        `json:"bin"`
	Total        int           `json:"total"`
	Velocity     int           `json:"velocity"`
	Transactions []Transaction `json:"transactions"`
}

// BINStat ranks a card BIN by its decline rate.
type BINStat struct {
	BIN         string `json:"bin"`
	Total       int    `json:"total"`
	Declined    int    `json:"declined"`
	DeclineRate int    `json:"decline_rate"` // rounded percentage, 0-100
}

// HourlyBucket counts transactions for one hour of the day, split by status.
type HourlyBucket struct {
	Hour     int `json:"hour"` // 0-23
	Approved int `json:"approved"`
	Declined int `json:"declined"`
	Pending  int `json:"pending"`
	Refunded int `json:"refunded"`
	Total    int `json:"total"`
}

// Summary carries the headline numbers shown at the top of the dashboard.
type Summary struct {
	Total         int `json:"total"`
	Approved      int `json:"approved"`
	ApprovalRate  int `json:"approval_rate"` // rounded percentage
	GeoMismatches int `json:"geo_mismatches"`
	VelocityFlags int `json:"velocity_flags"`
	CardTestFlags int `json:"card_test_flags"`
}

// RiskTransaction pairs a transaction with its computed risk level for
// list endpoints.
type RiskTransaction struct {
	Transaction
	Risk RiskLevel `json:"risk"`
}
