package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"replsite/internal/cache"
	"replsite/internal/locale"
	"replsite/internal/metrics"
	"replsite/pkg/logging"
)

// MessageService 解析器前面加一层读穿缓存
type MessageService struct {
	resolver *locale.Resolver
	catalog  *locale.Catalog
	cache    cache.Cache
}

func NewMessageService(resolver *locale.Resolver, catalog *locale.Catalog, c cache.Cache) *MessageService {
	if c == nil {
		c = cache.Noop{}
	}
	return &MessageService{resolver: resolver, catalog: catalog, cache: c}
}

// Catalog 支持的语言目录
func (s *MessageService) Catalog() *locale.Catalog {
	return s.catalog
}

// Messages 返回合并后的消息映射。解析失败不写缓存。
func (s *MessageService) Messages(ctx context.Context, l locale.Locale) (locale.Messages, error) {
	if msgs, ok := s.cache.Get(ctx, l); ok {
		return msgs, nil
	}

	msgs, err := s.resolver.Resolve(ctx, l)
	if err != nil {
		if errors.Is(err, locale.ErrLocaleNotFound) {
			metrics.ResolutionsTotal.WithLabelValues("not_found").Inc()
			logging.Logger.Info("Locale not found",
				zap.String("locale", l.String()),
				zap.Error(err))
		} else {
			metrics.ResolutionsTotal.WithLabelValues("error").Inc()
			logging.Logger.Error("Failed to resolve locale messages",
				zap.String("locale", l.String()),
				zap.Error(err))
		}
		return nil, err
	}

	metrics.ResolutionsTotal.WithLabelValues("ok").Inc()
	s.cache.Set(ctx, l, msgs)
	return msgs, nil
}

// Warmup 依次解析目录中的全部语言并写入缓存，返回第一个错误
func (s *MessageService) Warmup(ctx context.Context) error {
	logging.Logger.Info("Messages warmup start", zap.String("cache", s.cache.Driver()))

	var firstErr error
	for _, l := range s.catalog.Locales() {
		msgs, err := s.resolver.Resolve(ctx, l)
		if err != nil {
			logging.Logger.Error("Warmup failed for locale",
				zap.String("locale", l.String()),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.cache.Set(ctx, l, msgs)
	}

	logging.Logger.Info("Messages warmup end", zap.Bool("ok", firstErr == nil))
	return firstErr
}

// Invalidate 清空缓存，语言包更新后调用
func (s *MessageService) Invalidate(ctx context.Context) {
	s.cache.Purge(ctx)
	logging.Logger.Info("Messages cache purged", zap.String("cache", s.cache.Driver()))
}

// BundleSeeder 可写入语言包的存储，由 repository.BundleStore 实现
type BundleSeeder interface {
	Seed(ctx context.Context, source locale.Loader, locales []locale.Locale, overwrite bool) (int, error)
}

// Reseed 把 source 中目录内的语言包写入 store，有写入时清空缓存。
// Redis 缓存在多实例和重新部署之间共享，覆盖写入后旧的合并结果必须失效。
func (s *MessageService) Reseed(ctx context.Context, store BundleSeeder, source locale.Loader, overwrite bool) (int, error) {
	written, err := store.Seed(ctx, source, s.catalog.Locales(), overwrite)
	if written > 0 {
		s.Invalidate(ctx)
	}
	if err != nil {
		return written, err
	}
	logging.Logger.Info("Locale bundles seeded", zap.Int("written", written), zap.Bool("overwrite", overwrite))
	return written, nil
}
