package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"heavy-haul-service/internal/domain"
	"heavy-haul-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const permitKeyPrefix = "permits:"

// RedisPermitCache stores route permit summaries in Redis with a TTL.
// Summaries depend only on cargo specs, the route and the permit dataset, so
// entries expire rather than being invalidated.
type RedisPermitCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPermitCache(rdb *redis.Client, ttl time.Duration) *RedisPermitCache {
	return &RedisPermitCache{rdb: rdb, ttl: ttl}
}

// NewRedisPermitCacheFromURL connects using a redis:// URL.
func NewRedisPermitCacheFromURL(url string, ttl time.Duration) (*RedisPermitCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("permit cache: parse redis url: %w", err)
	}
	return NewRedisPermitCache(redis.NewClient(opt), ttl), nil
}

// PermitSummaryKey derives a stable cache key from the inputs of a route
// permit calculation. State codes are compared case-insensitively, as the
// calculator does.
func PermitSummaryKey(specs domain.CargoSpecs, route []domain.StateMileage) string {
	legs := make([]domain.StateMileage, len(route))
	for i, l := range route {
		legs[i] = domain.StateMileage{StateCode: strings.ToUpper(strings.TrimSpace(l.StateCode)), Miles: l.Miles}
	}
	raw, _ := json.Marshal(struct {
		Specs domain.CargoSpecs     `json:"specs"`
		Route []domain.StateMileage `json:"route"`
	}{specs, legs})
	sum := sha256.Sum256(raw)
	return permitKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *RedisPermitCache) Get(
	ctx context.Context,
	specs domain.CargoSpecs,
	route []domain.StateMileage,
) (_ *domain.DetailedRoutePermitSummary, _ bool, err error) {
	defer obs.Time(ctx, "permit.cache.Get")(&err)

	if c.rdb == nil {
		return nil, false, errors.New("permit cache: redis client is nil")
	}

	key := PermitSummaryKey(specs, route)
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		obs.PermitCacheLookups.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get permit cache %q: %w", key, err)
	}

	var summary domain.DetailedRoutePermitSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, fmt.Errorf("get permit cache: decode %q: %w", key, err)
	}

	obs.PermitCacheLookups.WithLabelValues("hit").Inc()
	return &summary, true, nil
}

func (c *RedisPermitCache) Set(
	ctx context.Context,
	specs domain.CargoSpecs,
	route []domain.StateMileage,
	summary *domain.DetailedRoutePermitSummary,
) error {
	if c.rdb == nil {
		return errors.New("permit cache: redis client is nil")
	}
	if summary == nil {
		return errors.New("set permit cache: summary is nil")
	}

	key := PermitSummaryKey(specs, route)
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("set permit cache: encode %q: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set permit cache %q: %w", key, err)
	}

	return nil
}

func (c *RedisPermitCache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
