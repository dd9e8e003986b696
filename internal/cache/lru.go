package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"replsite/internal/locale"
	"replsite/internal/metrics"
)

// LRU 进程内缓存，基于 golang-lru/v2/expirable
type LRU struct {
	lru *expirable.LRU[locale.Locale, locale.Messages]
}

// NewLRU size 为最大条目数，ttl 为 0 时不过期
func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = 16
	}
	return &LRU{lru: expirable.NewLRU[locale.Locale, locale.Messages](size, nil, ttl)}
}

func (c *LRU) Get(_ context.Context, l locale.Locale) (locale.Messages, bool) {
	msgs, ok := c.lru.Get(l)
	if !ok {
		metrics.CacheMissesTotal.WithLabelValues(DriverLRU).Inc()
		return nil, false
	}
	metrics.CacheHitsTotal.WithLabelValues(DriverLRU).Inc()
	return msgs.Clone(), true
}

func (c *LRU) Set(_ context.Context, l locale.Locale, msgs locale.Messages) {
	c.lru.Add(l, msgs.Clone())
}

func (c *LRU) Purge(context.Context) {
	c.lru.Purge()
}

func (c *LRU) Driver() string {
	return DriverLRU
}

// Len 当前条目数
func (c *LRU) Len() int {
	return c.lru.Len()
}
