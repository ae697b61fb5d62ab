package models

import "time"

// Transaction statuses as reported by the payment processor.
const (
	StatusApproved = "approved"
	StatusDeclined = "declined"
	StatusPending  = "pending"
	StatusRefunded = "refunded"
)

// Statuses lists every valid transaction status.
var Statuses = []string{StatusApproved, StatusDeclined, StatusPending, StatusRefunded}

// Supported currency codes for Lunara's markets.
const (
	USD = "USD"
	BRL = "BRL"
	MXN = "MXN"
	THB = "THB"
	EUR = "EUR"
)

// Transaction represents a single payment transaction. Records are immutable
// once ingested; GeoMismatch is derived at ingestion time and never
// recomputed downstream.
type Transaction struct {
	ID                 string    `json:"id" db:"id"`                                   // Unique transaction identifier, e.g. TXN-0001
	Timestamp          time.Time `json:"timestamp" db:"timestamp"`                     // When the transaction occurred
	Amount             float64   `json:"amount" db:"amount"`                           // Transaction amount, always > 0
	Currency           string    `json:"currency" db:"currency"`                       // Currency code (e.g. USD, BRL)
	Status             string    `json:"status" db:"status"`                           // One of approved, declined, pending, refunded
	CardBIN            string    `json:"card_bin" db:"card_bin"`                       // Leading digits identifying the issuing range
	CardCountry        string    `json:"card_country" db:"card_country"`               // Issuing country of the card
	IPCountry          string    `json:"ip_country" db:"ip_country"`                   // Country observed from the request IP
	BookingDestination string    `json:"booking_destination" db:"booking_destination"` // Free-text travel destination
	CustomerID         string    `json:"customer_id" db:"customer_id"`                 // Customer account identifier
	AccountAgeDays     int       `json:"account_age_days" db:"account_age_days"`       // Age of the customer account in days
	GeoMismatch        bool      `json:"geo_mismatch" db:"geo_mismatch"`               // True when card and IP countries differ
	VelocityFlag       bool      `json:"velocity_flag" db:"velocity_flag"`             // Set when the BIN shows rapid repeated use
	CardTestFlag       bool      `json:"card_test_flag" db:"card_test_flag"`           // Set when the card shows a testing pattern
}

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusApproved, StatusDeclined, StatusPending, StatusRefunded:
		return true
	}
	return false
}
