//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cache_test
package cache

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"samecity/internal/geo"
)

type Geocoder interface {
	Resolve(ctx context.Context, address geo.Address) (geo.Point, error)
}

// Store is the part of the redis client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}
