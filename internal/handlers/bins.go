package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// BINReporter defines the interface that the service must implement.
type BINReporter interface {
	BINRanking(ctx context.Context) ([]models.BINStat, error)
}

// BINRankingResponse represents the BIN decline-rate ranking
// swagger:model BINRankingResponse
type BINRankingResponse struct {
	// Card BINs ranked by decline rate, highest first
	BINs []models.BINStat `json:"bins"`
}

// NewBINRankingHandler returns an HTTP handler for the BIN ranking report.
// @Summary BIN decline-rate ranking
// @Description Returns the top card BINs ranked by share of declined transactions.
// @Tags reports
// @Produce json
// @Success 200 {object} handlers.BINRankingResponse "BIN ranking"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reports/bins [get]
// @Security BearerAuth
func NewBINRankingHandler(svc BINReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.BINRanking(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute bin ranking", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if stats == nil {
			stats = []models.BINStat{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BINRankingResponse{BINs: stats})
	}
}
