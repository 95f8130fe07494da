package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"samecity/internal/geo"
	"samecity/pkg/logger"
)

const keyPrefix = "geocode:"

// Cache remembers resolved coordinates per address. Redis failures are
// logged and fall through to the wrapped geocoder; failed lookups are not
// cached.
type Cache struct {
	log      logger.Logger
	store    Store
	upstream Geocoder
	ttl      time.Duration
}

func New(log logger.Logger, store Store, upstream Geocoder, ttl time.Duration) *Cache {
	return &Cache{
		log:      log.With(logger.NewField("component", "geocode_cache")),
		store:    store,
		upstream: upstream,
		ttl:      ttl,
	}
}

func (c *Cache) Resolve(ctx context.Context, address geo.Address) (geo.Point, error) {
	key := cacheKey(address)

	cached, err := c.store.Get(ctx, key).Result()
	switch {
	case err == nil:
		point, err := decodePoint(cached)
		if err == nil {
			GeocodeCacheLookupsTotal.WithLabelValues(lookupHit).Inc()
			return point, nil
		}
		GeocodeCacheLookupsTotal.WithLabelValues(lookupError).Inc()
		c.log.Warn("drop malformed cache entry",
			logger.NewField("key", key),
			logger.NewField("error", err),
		)
	case errors.Is(err, goredis.Nil):
		GeocodeCacheLookupsTotal.WithLabelValues(lookupMiss).Inc()
	default:
		GeocodeCacheLookupsTotal.WithLabelValues(lookupError).Inc()
		c.log.Warn("geocode cache read failed",
			logger.NewField("key", key),
			logger.NewField("error", err),
		)
	}

	point, err := c.upstream.Resolve(ctx, address)
	if err != nil {
		return geo.Point{}, err
	}

	if err := c.store.Set(ctx, key, encodePoint(point), c.ttl).Err(); err != nil {
		c.log.Warn("geocode cache write failed",
			logger.NewField("key", key),
			logger.NewField("error", err),
		)
	}
	return point, nil
}

func cacheKey(address geo.Address) string {
	sum := sha1.Sum([]byte(strings.TrimSpace(address.String())))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func encodePoint(p geo.Point) string {
	return p.Lat.String() + "," + p.Lng.String()
}

func decodePoint(s string) (geo.Point, error) {
	lat, lng, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Point{}, fmt.Errorf("malformed point %q", s)
	}

	latDec, err := decimal.NewFromString(lat)
	if err != nil {
		return geo.Point{}, fmt.Errorf("parse latitude: %w", err)
	}
	lngDec, err := decimal.NewFromString(lng)
	if err != nil {
		return geo.Point{}, fmt.Errorf("parse longitude: %w", err)
	}
	return geo.Point{Lat: latDec, Lng: lngDec}, nil
}
