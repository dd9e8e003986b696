package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"

	"replsite/constant"
	"replsite/internal/locale"
	"replsite/internal/metrics"
	"replsite/pkg/logging"
)

// Redis 多实例共享的缓存，值为 JSON
type Redis struct {
	pool *redis.Pool
	ttl  time.Duration
}

// NewRedis ttl 小于 1 秒时按 1 小时处理
func NewRedis(pool *redis.Pool, ttl time.Duration) *Redis {
	if ttl < time.Second {
		ttl = time.Hour
	}
	return &Redis{pool: pool, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context, l locale.Locale) (locale.Messages, bool) {
	key := constant.GetMessagesKey(l.String())

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to get Redis connection", zap.String("cache_key", key), zap.Error(err))
		return nil, false
	}
	defer closeConn(conn)

	raw, err := redis.Bytes(redis.DoContext(conn, ctx, "GET", key))
	if err != nil {
		if !errors.Is(err, redis.ErrNil) {
			logging.Logger.Warn("Error getting from Redis", zap.String("cache_key", key), zap.Error(err))
		}
		metrics.CacheMissesTotal.WithLabelValues(DriverRedis).Inc()
		return nil, false
	}

	// JSON 往返后非字符串标量会改变类型：整数和浮点变为 float64，TOML 日期变为字符串
	var msgs locale.Messages
	if err := json.Unmarshal(raw, &msgs); err != nil {
		logging.Logger.Warn("Failed to unmarshal cached value", zap.String("cache_key", key), zap.Error(err))
		metrics.CacheMissesTotal.WithLabelValues(DriverRedis).Inc()
		return nil, false
	}
	metrics.CacheHitsTotal.WithLabelValues(DriverRedis).Inc()
	return msgs, true
}

func (c *Redis) Set(ctx context.Context, l locale.Locale, msgs locale.Messages) {
	key := constant.GetMessagesKey(l.String())

	value, err := json.Marshal(msgs)
	if err != nil {
		logging.Logger.Error("Failed to marshal messages", zap.String("cache_key", key), zap.Error(err))
		return
	}

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to get Redis connection", zap.String("cache_key", key), zap.Error(err))
		return
	}
	defer closeConn(conn)

	if _, err := redis.DoContext(conn, ctx, "SET", key, value, "EX", int(c.ttl/time.Second)); err != nil {
		logging.Logger.Error("Failed to set cache", zap.String("cache_key", key), zap.Error(err))
	}
}

// Purge 用 SCAN 删除全部消息缓存，不阻塞 Redis
func (c *Redis) Purge(ctx context.Context) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to get Redis connection", zap.Error(err))
		return
	}
	defer closeConn(conn)

	cursor := 0
	for {
		values, err := redis.Values(redis.DoContext(conn, ctx, "SCAN", cursor, "MATCH", constant.MessagesScan, "COUNT", 100))
		if err != nil {
			logging.Logger.Warn("Redis SCAN failed", zap.Int("cursor", cursor), zap.Error(err))
			return
		}

		if len(values) != 2 {
			logging.Logger.Warn("Unexpected SCAN reply", zap.Int("len", len(values)))
			return
		}
		if cursor, err = redis.Int(values[0], nil); err != nil {
			logging.Logger.Warn("Failed to parse SCAN cursor", zap.Error(err))
			return
		}
		keys, err := redis.Strings(values[1], nil)
		if err != nil {
			logging.Logger.Warn("Failed to parse SCAN keys", zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if _, err := redis.DoContext(conn, ctx, "DEL", redis.Args{}.AddFlat(keys)...); err != nil {
				logging.Logger.Warn("Redis DEL failed", zap.Strings("keys", keys), zap.Error(err))
			}
		}
		if cursor == 0 {
			return
		}
	}
}

func (c *Redis) Driver() string {
	return DriverRedis
}

func closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		logging.Logger.Error("Failed to close Redis connection",
			zap.Error(err),
			zap.String("operation", "close"),
			zap.String("connection_type", "redis"),
		)
	}
}
