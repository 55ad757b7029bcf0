package cache

import (
	"context"
	"encoding/json"
	"time"

	"leasehub-admin/pkg/logger"
	"leasehub-admin/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// Snapshot cache keys for the full-collection listings.
const (
	UsersSnapshotKey         = "snapshot:users"
	SubscriptionsSnapshotKey = "snapshot:subscriptions"
)

// GetSnapshot loads a cached listing snapshot into dest. Returns false
// on a miss.
func GetSnapshot(ctx context.Context, key string, dest interface{}) (bool, error) {
	start := time.Now()
	data, err := RedisClient.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		metrics.SnapshotMissesTotal.Inc()
		return false, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		return false, err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, err
	}
	metrics.SnapshotHitsTotal.Inc()
	return true, nil
}

// SetSnapshot stores a listing snapshot with the given TTL.
func SetSnapshot(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	start := time.Now()
	err = RedisClient.Set(ctx, key, data, ttl).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		return err
	}
	return nil
}

// InvalidateSnapshot drops a cached snapshot after a write. A failed
// invalidation is logged, not returned: the TTL bounds the staleness.
func InvalidateSnapshot(ctx context.Context, key string) {
	start := time.Now()
	err := RedisClient.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("del").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
		logger.GlobalLogger.Errorf("failed to invalidate snapshot %s: %v", key, err)
	}
}
