package mongodb

import (
	"context"
	"time"
)

// CacheService is the slice of pkg/cache the repositories use. A nil cache
// is valid; every call site checks before touching it.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	couponCacheTTL   = 30 * time.Minute
	productCacheTTL  = 10 * time.Minute
	settingsCacheTTL = 5 * time.Minute
)
