package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"replsite/constant"
	"replsite/internal/locale"
	"replsite/internal/repository"
	"replsite/pkg/logging"
)

func newTestPool(t *testing.T) (*miniredis.Miniredis, *redis.Pool) {
	t.Helper()
	mr := miniredis.RunT(t)
	pool := &redis.Pool{
		MaxIdle: 2,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", mr.Addr())
		},
	}
	t.Cleanup(func() { _ = pool.Close() })
	return mr, pool
}

func newTestStatsStore(t *testing.T) *repository.StatsStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "replsite.db")), &gorm.Config{
		Logger: logging.NewGormLogger(zap.NewNop(), logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repository.NewStatsStore(db)
}

func TestUsageServiceDisabled(t *testing.T) {
	svc := NewUsageService(nil, nil)
	ctx := context.Background()

	svc.Record(ctx, locale.French)

	views, err := svc.DailyViews(ctx, "20260101")
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NoError(t, svc.Sync(ctx))

	history, err := svc.History(ctx, locale.French, 30)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUsageServiceRecord(t *testing.T) {
	mr, pool := newTestPool(t)
	svc := NewUsageService(pool, nil)
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	svc.Record(ctx, locale.French)
	svc.Record(ctx, locale.French)
	svc.Record(ctx, locale.German)

	dailyKey := constant.GetDailyViewsKey("20261019")
	assert.Equal(t, "2", mr.HGet(dailyKey, "fr"))
	assert.Equal(t, "1", mr.HGet(dailyKey, "de"))
	assert.Equal(t, constant.DailyTTL, mr.TTL(dailyKey))
	assert.Equal(t, "2", mr.HGet(constant.TotalViews, "fr"))

	views, err := svc.DailyViews(ctx, "20261019")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"fr": 2, "de": 1}, views)

	views, err = svc.DailyViews(ctx, "20261018")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestUsageServiceSync(t *testing.T) {
	_, pool := newTestPool(t)
	svc := NewUsageService(pool, newTestStatsStore(t))
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	svc.Record(ctx, locale.French)
	svc.Record(ctx, locale.French)
	require.NoError(t, svc.Sync(ctx))

	svc.Record(ctx, locale.French)
	require.NoError(t, svc.Sync(ctx))

	history, err := svc.History(ctx, locale.French, 30)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "2026-10-19", history[0].Date)
	assert.Equal(t, int64(3), history[0].Views)

	history, err = svc.History(ctx, locale.German, 30)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestNewScheduler(t *testing.T) {
	svc := newTestService(t, locale.MapLoader{}, nil)
	usage := NewUsageService(nil, nil)

	c, err := NewScheduler(svc, usage, "*/10 * * * *", "@every 1h")
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)

	c, err = NewScheduler(svc, usage, "", "")
	require.NoError(t, err)
	assert.Empty(t, c.Entries())

	_, err = NewScheduler(svc, usage, "not a cron expression", "")
	assert.Error(t, err)
}
