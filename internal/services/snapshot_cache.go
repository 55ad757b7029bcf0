package services

import (
	"context"

	"leasehub-admin/pkg/cache"
)

// invalidateSnapshot drops a cached listing snapshot after a write that
// changes what the snapshot would contain. A function variable so tests
// can observe invalidations without a Redis server.
var invalidateSnapshot = func(ctx context.Context, key string) {
	if cache.RedisClient == nil {
		return
	}
	cache.InvalidateSnapshot(ctx, key)
}
