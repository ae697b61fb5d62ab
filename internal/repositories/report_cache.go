package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/redis/go-redis/v9"
)

// ErrReportNotCached is returned when no cached report exists for the key.
var ErrReportNotCached = errors.New("report not found in cache")

// ReportCacheRepository memoizes computed reports in Redis, keyed by report
// name and snapshot version. A report is only ever written for the snapshot
// it was computed from, so a hit is always exact; the TTL just bounds
// garbage from retired snapshots.
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewReportCacheRepository creates a new repository instance with the given TTL.
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetReport fetches a cached report into dst. Returns ErrReportNotCached on
// a miss.
func (r *ReportCacheRepository) GetReport(ctx context.Context, name, version string, dst any) error {
	key := reportKey(name, version)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", "",
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return ErrReportNotCached
		}
		return err
	}

	if err := json.Unmarshal([]byte(val), dst); err != nil {
		logger.Log.Errorw("failed to decode cached report", "key", key, "error", err)
		return err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)
	return nil
}

// SetReport caches a computed report under the snapshot version.
func (r *ReportCacheRepository) SetReport(ctx context.Context, name, version string, report any) error {
	key := reportKey(name, version)

	data, err := json.Marshal(report)
	if err != nil {
		logger.Log.Errorw("failed to encode report for cache", "key", key, "error", err)
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

func reportKey(name, version string) string {
	return fmt.Sprintf("report:%s:%s", name, version)
}
