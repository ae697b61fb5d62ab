package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// VelocityReporter defines the interface that the service must implement.
type VelocityReporter interface {
	Velocity(ctx context.Context) ([]models.VelocityGroup, error)
}

// VelocityResponse represents the velocity detection report
// swagger:model VelocityResponse
type VelocityResponse struct {
	// Flagged card BINs, highest velocity first
	Flagged []models.VelocityGroup `json:"flagged"`
}

// NewVelocityHandler returns an HTTP handler for the velocity report.
// @Summary Velocity detection report
// @Description Returns card BINs with rapid repeated use inside the detection window, highest velocity first.
// @Tags reports
// @Produce json
// @Success 200 {object} handlers.VelocityResponse "Velocity report"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reports/velocity [get]
// @Security BearerAuth
func NewVelocityHandler(svc VelocityReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flagged, err := svc.Velocity(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute velocity report", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if flagged == nil {
			flagged = []models.VelocityGroup{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VelocityResponse{Flagged: flagged})
	}
}
