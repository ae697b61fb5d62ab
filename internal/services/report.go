package services

import (
	"context"
	"errors"
	"time"

	"github.com/lunara-travel/fraud-monitor/internal/analytics"
	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/metrics"
	"github.com/lunara-travel/fraud-monitor/internal/models"
)

// ErrTransactionNotFound is returned when a drill-down target does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionLister is the transaction feed boundary: validated records
// ordered by timestamp ascending.
type TransactionLister interface {
	List(ctx context.Context, status string) ([]models.Transaction, error)
}

// ReportCache memoizes computed reports by report name and snapshot version.
type ReportCache interface {
	GetReport(ctx context.Context, name, version string, dst any) error
	SetReport(ctx context.Context, name, version string, report any) error
}

// ReportService derives fraud signals from the transaction feed. Every
// report is recomputed from the current snapshot; the cache is keyed by the
// snapshot version, so a changed feed or filter always misses and stale
// results are never served.
type ReportService struct {
	feed        TransactionLister
	cache       ReportCache
	metrics     *metrics.Collector
	classifier  *analytics.Classifier
	velocityCfg analytics.VelocityConfig
	hourLoc     *time.Location
}

// NewReportService creates a ReportService. cache and collector may be nil;
// the service then recomputes every report and skips instrumentation.
// hourLoc selects the time reference for hourly bucketing (nil means UTC).
func NewReportService(
	feed TransactionLister,
	cache ReportCache,
	collector *metrics.Collector,
	highRiskBINs []string,
	velocityCfg analytics.VelocityConfig,
	hourLoc *time.Location,
) *ReportService {
	if hourLoc == nil {
		hourLoc = time.UTC
	}
	return &ReportService{
		feed:        feed,
		cache:       cache,
		metrics:     collector,
		classifier:  analytics.NewClassifier(highRiskBINs),
		velocityCfg: velocityCfg,
		hourLoc:     hourLoc,
	}
}

// Velocity reports card BINs showing rapid repeated use.
func (s *ReportService) Velocity(ctx context.Context) ([]models.VelocityGroup, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.velocityFor(ctx, snap)
}

// velocityFor computes or retrieves the velocity report for an
// already-loaded snapshot.
func (s *ReportService) velocityFor(ctx context.Context, snap analytics.Snapshot) ([]models.VelocityGroup, error) {
	var groups []models.VelocityGroup
	if s.cached(ctx, "velocity", snap.Version(), &groups) {
		return groups, nil
	}

	groups = analytics.DetectVelocity(snap, s.velocityCfg)
	s.store(ctx, "velocity", snap.Version(), groups)
	return groups, nil
}

// BINRanking reports the top card BINs by decline rate.
func (s *ReportService) BINRanking(ctx context.Context) ([]models.BINStat, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var stats []models.BINStat
	if s.cached(ctx, "bins", snap.Version(), &stats) {
		return stats, nil
	}

	stats = analytics.RankBINsByDeclineRate(snap, analytics.DefaultBINLimit)
	s.store(ctx, "bins", snap.Version(), stats)
	return stats, nil
}

// Hourly reports transaction volume per hour of day, optionally restricted
// to one status.
func (s *ReportService) Hourly(ctx context.Context, status string) ([]models.HourlyBucket, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	snap = snap.FilterStatus(status)

	var buckets []models.HourlyBucket
	if s.cached(ctx, "hourly", snap.Version(), &buckets) {
		return buckets, nil
	}

	buckets = analytics.HourlyVolume(snap, s.hourLoc)
	s.store(ctx, "hourly", snap.Version(), buckets)
	return buckets, nil
}

// Summary reports the headline dashboard numbers. Velocity flags from the
// detector are merged into the records first, so the counts reflect
// detection even when the feed left the flags unset.
func (s *ReportService) Summary(ctx context.Context) (models.Summary, error) {
	snap, err := s.flaggedSnapshot(ctx)
	if err != nil {
		return models.Summary{}, err
	}

	var sum models.Summary
	if s.cached(ctx, "summary", snap.Version(), &sum) {
		return sum, nil
	}

	sum = analytics.Summarize(snap)
	s.store(ctx, "summary", snap.Version(), sum)
	return sum, nil
}

// Transactions returns the geo-inspector rows: newest first, risk level
// attached, optionally restricted by status and to geo mismatches.
func (s *ReportService) Transactions(ctx context.Context, status string, mismatchOnly bool) ([]models.RiskTransaction, error) {
	snap, err := s.flaggedSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	snap = snap.FilterStatus(status)

	return analytics.Inspect(snap, mismatchOnly, analytics.DefaultInspectLimit, s.classifier), nil
}

// Related returns up to 8 other transactions on the same card BIN as the
// given transaction.
func (s *ReportService) Related(ctx context.Context, id string) ([]models.Transaction, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	related, err := analytics.Related(snap, id, analytics.DefaultRelatedLimit)
	if err != nil {
		if errors.Is(err, analytics.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return related, nil
}

// snapshot loads the full feed as an immutable snapshot.
func (s *ReportService) snapshot(ctx context.Context) (analytics.Snapshot, error) {
	txns, err := s.feed.List(ctx, "")
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return analytics.Snapshot{}, err
	}
	return analytics.NewSnapshot(txns), nil
}

// flaggedSnapshot loads the feed and merges the velocity detector's result
// into the records before classification-dependent reports run. The
// detection itself is memoized per snapshot version, so the merge is cheap.
func (s *ReportService) flaggedSnapshot(ctx context.Context) (analytics.Snapshot, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return analytics.Snapshot{}, err
	}

	flagged, err := s.velocityFor(ctx, snap)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	return analytics.NewSnapshot(analytics.ApplyVelocityFlags(snap, flagged)), nil
}

// cached tries the report cache; a hit decodes into dst and returns true.
func (s *ReportService) cached(ctx context.Context, name, version string, dst any) bool {
	if s.cache == nil {
		return false
	}
	if err := s.cache.GetReport(ctx, name, version, dst); err != nil {
		if s.metrics != nil {
			s.metrics.CacheMisses.WithLabelValues(name).Inc()
		}
		return false
	}
	if s.metrics != nil {
		s.metrics.CacheHits.WithLabelValues(name).Inc()
	}
	return true
}

// store writes a freshly computed report to the cache. Cache failures are
// logged and ignored; memoization is an optimization, never a correctness
// requirement.
func (s *ReportService) store(ctx context.Context, name, version string, report any) {
	if s.metrics != nil {
		s.metrics.ReportComputations.WithLabelValues(name).Inc()
	}
	if s.cache == nil {
		return
	}
	if err := s.cache.SetReport(ctx, name, version, report); err != nil {
		logger.Log.Errorw("failed to cache report", "report", name, "version", version, "error", err)
	}
}
