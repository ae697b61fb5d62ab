package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// HourlyReporter defines the interface that the service must implement.
type HourlyReporter interface {
	Hourly(ctx context.Context, status string) ([]models.HourlyBucket, error)
}

// HourlyResponse represents the hourly volume report
// swagger:model HourlyResponse
type HourlyResponse struct {
	// Exactly 24 buckets, hour 0 through 23
	Hours []models.HourlyBucket `json:"hours"`
}

// NewHourlyHandler returns an HTTP handler for the hourly volume report.
// @Summary Hourly transaction volume
// @Description Returns 24 hour-of-day buckets with per-status counts. Hours with no transactions are zero-filled.
// @Tags reports
// @Produce json
// @Param status query string false "Filter by status (approved, declined, pending, refunded)"
// @Success 200 {object} handlers.HourlyResponse "Hourly volume"
// @Failure 400 {object} handlers.ErrorResponse "Unknown status value"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reports/hourly [get]
// @Security BearerAuth
func NewHourlyHandler(svc HourlyReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status != "" && status != "all" && !models.ValidStatus(status) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unknown status value"})
			return
		}

		buckets, err := svc.Hourly(r.Context(), status)
		if err != nil {
			logger.Log.Errorw("failed to compute hourly volume", "status", status, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HourlyResponse{Hours: buckets})
	}
}
