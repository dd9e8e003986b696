// Package cache 合并后消息映射的缓存。语言包在一次发布内不可变，缓存只需按 TTL 过期。
package cache

import (
	"context"

	"replsite/internal/locale"
)

// 驱动名称，对应配置 cache.driver
const (
	DriverLRU   = "lru"
	DriverRedis = "redis"
	DriverNone  = "none"
)

// Cache 实现必须可并发使用，Get 返回的映射归调用方所有
type Cache interface {
	Get(ctx context.Context, l locale.Locale) (locale.Messages, bool)
	Set(ctx context.Context, l locale.Locale, msgs locale.Messages)
	Purge(ctx context.Context)
	Driver() string
}

// Noop 不缓存
type Noop struct{}

func (Noop) Get(context.Context, locale.Locale) (locale.Messages, bool) { return nil, false }
func (Noop) Set(context.Context, locale.Locale, locale.Messages) {}
func (Noop) Purge(context.Context) {}
func (Noop) Driver() string { return DriverNone }
