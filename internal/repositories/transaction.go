package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// TransactionReadRepository implements the transaction feed: validated
// records, ordered by timestamp ascending.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// List returns all transactions, oldest first. A non-empty status restricts
// the result to that status.
func (r *TransactionReadRepository) List(ctx context.Context, status string) ([]models.Transaction, error) {
	const query = `
		SELECT id, timestamp, amount, currency, status, card_bin,
		       card_country, ip_country, booking_destination, customer_id,
		       account_age_days, geo_mismatch, velocity_flag, card_test_flag
		FROM transactions
		WHERE ($1::VARCHAR IS NULL OR $1 = '' OR status = $1)
		ORDER BY timestamp ASC
	`

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status},
		"rows", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txns, nil
}

// GetByID returns a single transaction or nil when none matches.
func (r *TransactionReadRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	const query = `
		SELECT id, timestamp, amount, currency, status, card_bin,
		       card_country, ip_country, booking_destination, customer_id,
		       account_age_days, geo_mismatch, velocity_flag, card_test_flag
		FROM transactions
		WHERE id = $1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// TransactionWriteRepository persists ingested transactions.
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Save performs an UPSERT keyed by transaction id. Replayed feed events
// overwrite the previous row, keeping ingestion idempotent.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, timestamp, amount, currency, status, card_bin,
			card_country, ip_country, booking_destination, customer_id,
			account_age_days, geo_mismatch, velocity_flag, card_test_flag
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE
		SET timestamp = EXCLUDED.timestamp,
		    amount = EXCLUDED.amount,
		    currency = EXCLUDED.currency,
		    status = EXCLUDED.status,
		    card_bin = EXCLUDED.card_bin,
		    card_country = EXCLUDED.card_country,
		    ip_country = EXCLUDED.ip_country,
		    booking_destination = EXCLUDED.booking_destination,
		    customer_id = EXCLUDED.customer_id,
		    account_age_days = EXCLUDED.account_age_days,
		    geo_mismatch = EXCLUDED.geo_mismatch,
		    velocity_flag = EXCLUDED.velocity_flag,
		    card_test_flag = EXCLUDED.card_test_flag
	`
	args := []any{
		txn.ID, txn.Timestamp, txn.Amount, txn.Currency, txn.Status, txn.CardBIN,
		txn.CardCountry, txn.IPCountry, txn.BookingDestination, txn.CustomerID,
		txn.AccountAgeDays, txn.GeoMismatch, txn.VelocityFlag, txn.CardTestFlag,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.ID, txn.Status, txn.CardBIN},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
