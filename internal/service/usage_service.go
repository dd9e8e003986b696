package service

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"

	"replsite/constant"
	"replsite/internal/locale"
	"replsite/internal/model"
	"replsite/internal/repository"
	"replsite/pkg/logging"
)

// UsageService 按语言统计页面访问量：Redis 计数，定时落库
type UsageService struct {
	pool  *redis.Pool
	store *repository.StatsStore
	now   func() time.Time
}

// NewUsageService pool 或 store 为 nil 时对应功能为空操作
func NewUsageService(pool *redis.Pool, store *repository.StatsStore) *UsageService {
	return &UsageService{pool: pool, store: store, now: time.Now}
}

// Record 记录一次页面访问
func (s *UsageService) Record(ctx context.Context, l locale.Locale) {
	if s.pool == nil {
		return
	}
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to get Redis connection", zap.Error(err))
		return
	}
	defer closeConn(conn)

	dailyKey := constant.GetDailyViewsKey(constant.GetDateKey(s.now()))
	if _, err := redis.DoContext(conn, ctx, "HINCRBY", dailyKey, l.String(), 1); err != nil {
		logging.Logger.Error("Failed to record daily views",
			zap.String("key", dailyKey),
			zap.String("locale", l.String()),
			zap.Error(err))
	}
	if _, err := redis.DoContext(conn, ctx, "EXPIRE", dailyKey, int(constant.DailyTTL/time.Second)); err != nil {
		logging.Logger.Error("Failed to set daily views expire",
			zap.String("key", dailyKey),
			zap.Error(err))
	}
	if _, err := redis.DoContext(conn, ctx, "HINCRBY", constant.TotalViews, l.String(), 1); err != nil {
		logging.Logger.Error("Failed to record total views",
			zap.String("locale", l.String()),
			zap.Error(err))
	}
}

// DailyViews 读取某天各语言的访问量，date 格式 yyyyMMdd
func (s *UsageService) DailyViews(ctx context.Context, date string) (map[string]int64, error) {
	if s.pool == nil {
		return map[string]int64{}, nil
	}
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer closeConn(conn)

	return redis.Int64Map(redis.DoContext(conn, ctx, "HGETALL", constant.GetDailyViewsKey(date)))
}

// Sync 把当天的计数写入 locale_daily_stats
func (s *UsageService) Sync(ctx context.Context) error {
	if s.pool == nil || s.store == nil {
		return nil
	}
	logging.Logger.Info("Usage sync start")

	today := s.now()
	counts, err := s.DailyViews(ctx, constant.GetDateKey(today))
	if err != nil {
		logging.Logger.Error("Failed to read daily views", zap.Error(err))
		return err
	}

	date := today.Format("2006-01-02")
	for l, views := range counts {
		if err := s.store.SaveDailyViews(ctx, l, date, views); err != nil {
			logging.Logger.Error("Failed to save daily views",
				zap.String("locale", l),
				zap.String("date", date),
				zap.Int64("views", views),
				zap.Error(err))
		}
	}

	logging.Logger.Info("Usage sync end", zap.Int("locales", len(counts)))
	return nil
}

// History 某语言已落库的每日访问量，按日期倒序，未配置数据库时为空
func (s *UsageService) History(ctx context.Context, l locale.Locale, days int) ([]model.LocaleDailyStat, error) {
	if s == nil || s.store == nil {
		return []model.LocaleDailyStat{}, nil
	}
	return s.store.ListDailyViews(ctx, l.String(), days)
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
