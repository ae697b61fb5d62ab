package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/metrics"
	"github.com/lunara-travel/fraud-monitor/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrInvalidTransaction is returned when a feed event fails validation.
var ErrInvalidTransaction = errors.New("invalid transaction event")

// KafkaReader defines a Kafka reader abstraction.
type KafkaReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error) // Reads the next message from Kafka
	Close() error                                           // Closes the Kafka reader
}

// TransactionSaver persists validated transactions.
type TransactionSaver interface {
	Save(ctx context.Context, txn models.Transaction) error
}

// TransactionEvent is the JSON payload published by the payment gateway.
type TransactionEvent struct {
	ID                 string    `json:"id"`
	Timestamp          time.Time `json:"timestamp"`
	Amount             float64   `json:"amount"`
	Currency           string    `json:"currency"`
	Status             string    `json:"status"`
	CardBIN            string    `json:"card_bin"`
	CardCountry        string    `json:"card_country"`
	IPCountry          string    `json:"ip_country"`
	BookingDestination string    `json:"booking_destination"`
	CustomerID         string    `json:"customer_id"`
	AccountAgeDays     int       `json:"account_age_days"`
	VelocityFlag       bool      `json:"velocity_flag"`
	CardTestFlag       bool      `json:"card_test_flag"`
}

// IngestService consumes transaction events from Kafka, validates them, and
// persists them. Malformed events are rejected here so the analytics core
// only ever sees well-formed records.
type IngestService struct {
	reader  KafkaReader
	saver   TransactionSaver
	metrics *metrics.Collector
}

// NewIngestService creates a new IngestService.
func NewIngestService(reader KafkaReader, saver TransactionSaver, collector *metrics.Collector) *IngestService {
	return &IngestService{
		reader:  reader,
		saver:   saver,
		metrics: collector,
	}
}

// Run consumes events until the context is canceled. Invalid events are
// logged and skipped; persistence errors are logged and the event dropped,
// since the gateway will replay unacknowledged messages.
func (s *IngestService) Run(ctx context.Context) error {
	for {
		msg, err := s.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			logger.Log.Errorw("failed to read transaction event", "error", err)
			return err
		}

		if err := s.Ingest(ctx, msg.Value); err != nil {
			if errors.Is(err, ErrInvalidTransaction) {
				logger.Log.Warnw("rejected transaction event", "key", string(msg.Key), "error", err)
				continue
			}
			logger.Log.Errorw("failed to ingest transaction event", "key", string(msg.Key), "error", err)
		}
	}
}

// Ingest validates one raw event, derives the geo mismatch flag, and saves
// the transaction.
func (s *IngestService) Ingest(ctx context.Context, payload []byte) error {
	var event TransactionEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		s.reject()
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	if err := validateEvent(event); err != nil {
		s.reject()
		return err
	}

	txn := models.Transaction{
		ID:                 event.ID,
		Timestamp:          event.Timestamp,
		Amount:             event.Amount,
		Currency:           event.Currency,
		Status:             event.Status,
		CardBIN:            event.CardBIN,
		CardCountry:        event.CardCountry,
		IPCountry:          event.IPCountry,
		BookingDestination: event.BookingDestination,
		CustomerID:         event.CustomerID,
		AccountAgeDays:     event.AccountAgeDays,
		GeoMismatch:        event.CardCountry != event.IPCountry,
		VelocityFlag:       event.VelocityFlag,
		CardTestFlag:       event.CardTestFlag,
	}

	if err := s.saver.Save(ctx, txn); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.IngestedTotal.Inc()
	}
	return nil
}

func (s *IngestService) reject() {
	if s.metrics != nil {
		s.metrics.IngestRejected.Inc()
	}
}

func validateEvent(event TransactionEvent) error {
	switch {
	case event.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidTransaction)
	case event.Timestamp.IsZero():
		return fmt.Errorf("%w: missing timestamp", ErrInvalidTransaction)
	case event.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	case !models.ValidStatus(event.Status):
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransaction, event.Status)
	case event.CardBIN == "":
		return fmt.Errorf("%w: missing card_bin", ErrInvalidTransaction)
	case event.CardCountry == "" || event.IPCountry == "":
		return fmt.Errorf("%w: missing country codes", ErrInvalidTransaction)
	case event.AccountAgeDays < 0:
		return fmt.Errorf("%w: negative account age", ErrInvalidTransaction)
	}
	return nil
}
