package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/models"
	"github.com/lunara-travel/fraud-monitor/internal/services"
)

// RelatedReporter defines the interface that the service must implement.
type RelatedReporter interface {
	Related(ctx context.Context, id string) ([]models.Transaction, error)
}

// RelatedResponse represents the related-transaction drill-down
// swagger:model RelatedResponse
type RelatedResponse struct {
	// Other transactions on the same card BIN, chronological, at most 8
	Related []models.Transaction `json:"related"`
}

// NewRelatedHandler returns an HTTP handler for the related-transaction drill-down.
// @Summary List related transactions
// @Description Returns up to 8 other transactions sharing the card BIN of the given transaction.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} handlers.RelatedResponse "Related transactions"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions/{id}/related [get]
// @Security BearerAuth
func NewRelatedHandler(svc RelatedReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		related, err := svc.Related(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Transaction not found"})
				return
			}
			logger.Log.Errorw("failed to get related transactions", "id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RelatedResponse{Related: related})
	}
}
