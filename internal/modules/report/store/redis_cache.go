package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/appdotbuilder/payment-gateway-id/internal/modules/report/dto"

	"github.com/redis/go-redis/v9"
)

// RedisReportCache keeps dashboard reports warm for a short TTL so
// dashboard polling does not re-scan the ledger on every request.
type RedisReportCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewRedisReportCache(rdb redis.UniversalClient, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{rdb: rdb, ttl: ttl}
}

func (c *RedisReportCache) Get(ctx context.Context, key string) (*dto.ReportData, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var data dto.ReportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, data *dto.ReportData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}
