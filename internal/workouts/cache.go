package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/exerciselog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const latestAveragesKey = "exerciselog:averages:latest"

// setLatestAveragesScript stores ARGV[2] unless the cached snapshot has a higher id than ARGV[1].
// ARGV[3] is the ttl in milliseconds, 0 means no expiry.
const setLatestAveragesScript = `
local current = redis.call('GET', KEYS[1])
if current then
	local ok, cached = pcall(cjson.decode, current)
	if ok and type(cached) == 'table' and tonumber(cached['id']) and tonumber(cached['id']) > tonumber(ARGV[1]) then
		return 0
	end
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`

var ErrCacheMiss = errors.New("cache miss")

// AveragesCache keeps the latest averages snapshot in redis.
type AveragesCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewAveragesCache(redisClient *redis.Client, ttl time.Duration) *AveragesCache {
	return &AveragesCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (c *AveragesCache) Get(ctx context.Context) (_ *AveragesSnapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.averages.get")
	defer func() {
		if errors.Is(err, ErrCacheMiss) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cached, err := c.redisClient.Get(ctx, latestAveragesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("get latest averages: %w", err)
	}

	var snapshot AveragesSnapshot
	if err := json.Unmarshal(cached, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal latest averages: %w", err)
	}

	return &snapshot, nil
}

// Set caches the snapshot, never replacing a cached snapshot with a higher id.
func (c *AveragesCache) Set(ctx context.Context, snapshot AveragesSnapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.averages.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshotBytes, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal latest averages: %w", err)
	}

	stored, err := c.redisClient.Eval(
		ctx,
		setLatestAveragesScript,
		[]string{latestAveragesKey},
		snapshot.ID, string(snapshotBytes), c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return fmt.Errorf("set latest averages: %w", err)
	}
	if stored == 0 {
		log.Debugf("averages cache: snapshot %d older than cached one, skipped", snapshot.ID)
	}

	return nil
}

func (c *AveragesCache) Invalidate(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.averages.invalidate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := c.redisClient.Del(ctx, latestAveragesKey).Err(); err != nil {
		return fmt.Errorf("delete latest averages: %w", err)
	}

	return nil
}

// NoopAveragesCache is used when redis is disabled; every lookup is a miss.
type NoopAveragesCache struct{}

func (NoopAveragesCache) Get(context.Context) (*AveragesSnapshot, error) {
	return nil, ErrCacheMiss
}

func (NoopAveragesCache) Set(context.Context, AveragesSnapshot) error {
	return nil
}

func (NoopAveragesCache) Invalidate(context.Context) error {
	return nil
}
