package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"medical-history-service/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const dashboardStatsKey = "reports:dashboard_stats"

// StatsCacheService is a read-through cache for the dashboard totals. The
// dashboard is polled by every client on every page load while the counts
// change rarely, so a short TTL takes the four COUNT queries off the hot
// path. Cache failures are never fatal; callers fall back to the database.
type StatsCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewStatsCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *StatsCacheService {
	return &StatsCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// GetDashboardStats returns the cached stats, or (nil, nil) on a cache miss.
func (s *StatsCacheService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	data, err := s.redisClient.Get(ctx, dashboardStatsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats dto.DashboardStatsResponse
	if err := json.Unmarshal(data, &stats); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		s.log.Warnf("Failed to decode cached dashboard stats: %+v", err)
		return nil, nil
	}

	return &stats, nil
}

// SetDashboardStats stores the stats with the configured TTL.
func (s *StatsCacheService) SetDashboardStats(ctx context.Context, stats *dto.DashboardStatsResponse) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.redisClient.Set(ctx, dashboardStatsKey, data, s.ttl).Err()
}

// InvalidateDashboardStats drops the cached entry after a write that changes
// any of the four totals.
func (s *StatsCacheService) InvalidateDashboardStats(ctx context.Context) error {
	return s.redisClient.Del(ctx, dashboardStatsKey).Err()
}
