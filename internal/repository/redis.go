package repository

import (
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"replsite/pkg/logging"
)

var RedisPool *redis.Pool

// InitRedis 创建连接池。redis.addr 为空时不创建，RedisPool 保持 nil。
func InitRedis() {
	addr := viper.GetString("redis.addr")
	password := viper.GetString("redis.password")
	if addr == "" {
		logging.Logger.Info("redis.addr not set, redis disabled")
		return
	}

	RedisPool = &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			conn, err := redis.Dial("tcp", addr,
				redis.DialConnectTimeout(5*time.Second),
				redis.DialPassword(password),
			)
			if err != nil {
				logging.Logger.Error("Failed to connect Redis",
					zap.String("addr", addr),
					zap.Error(err),
				)
				return nil, err
			}

			logging.Logger.Debug("Redis connection established",
				zap.String("addr", addr),
				zap.Bool("auth", password != ""),
			)
			return conn, nil
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			if err != nil {
				logging.Logger.Warn("Redis connection health check failed",
					zap.String("addr", addr),
					zap.Error(err),
				)
			}
			return err
		},
	}
}

// CloseRedis 关闭连接池
func CloseRedis() {
	if RedisPool == nil {
		return
	}
	if err := RedisPool.Close(); err != nil {
		logging.Logger.Warn("Redis pool close failed", zap.Error(err))
	}
}
