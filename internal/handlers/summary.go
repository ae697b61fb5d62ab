package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// SummaryReporter defines the interface that the service must implement.
type SummaryReporter interface {
	Summary(ctx context.Context) (models.Summary, error)
}

// SummaryResponse represents the headline dashboard numbers
// swagger:model SummaryResponse
type SummaryResponse struct {
	Summary models.Summary `json:"summary"`
}

// NewSummaryHandler returns an HTTP handler for the dashboard summary.
// @Summary Dashboard summary
// @Description Returns total volume, approval rate, and fraud flag counts for the current snapshot.
// @Tags reports
// @Produce json
// @Success 200 {object} handlers.SummaryResponse "Summary"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reports/summary [get]
// @Security BearerAuth
func NewSummaryHandler(svc SummaryReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute summary", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SummaryResponse{Summary: sum})
	}
}
