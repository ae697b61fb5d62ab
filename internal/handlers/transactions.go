package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// TransactionReporter defines the interface that the service must implement.
type TransactionReporter interface {
	Transactions(ctx context.Context, status string, mismatchOnly bool) ([]models.RiskTransaction, error)
}

// TransactionsResponse represents the geo-inspector listing
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Transactions, newest first, each with its computed risk level
	Transactions []models.RiskTransaction `json:"transactions"`
}

// NewTransactionsHandler returns an HTTP handler for the transaction listing.
// @Summary List recent transactions
// @Description Returns the newest transactions with their risk level attached. Optional filters by status and geo mismatch.
// @Tags transactions
// @Produce json
// @Param status query string false "Filter by status (approved, declined, pending, refunded)"
// @Param mismatch_only query bool false "Only transactions whose card and IP countries differ"
// @Success 200 {object} handlers.TransactionsResponse "Transaction listing"
// @Failure 400 {object} handlers.ErrorResponse "Unknown status value"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(svc TransactionReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status != "" && status != "all" && !models.ValidStatus(status) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unknown status value"})
			return
		}
		mismatchOnly := r.URL.Query().Get("mismatch_only") == "true"

		rows, err := svc.Transactions(r.Context(), status, mismatchOnly)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "status", status, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionsResponse{Transactions: rows})
	}
}
