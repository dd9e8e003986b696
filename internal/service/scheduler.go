package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"replsite/pkg/logging"
)

// 单次任务的超时时间
const jobTimeout = 2 * time.Minute

// NewScheduler 注册缓存预热和访问量落库任务，cron 表达式为空的任务不注册。
// 返回的 cron 尚未启动。
func NewScheduler(messages *MessageService, usage *UsageService, warmupSpec, syncSpec string) (*cron.Cron, error) {
	c := cron.New()

	if warmupSpec != "" && messages != nil {
		if _, err := c.AddFunc(warmupSpec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			if err := messages.Warmup(ctx); err != nil {
				logging.Logger.Error("Messages warmup job failed", zap.Error(err))
			}
		}); err != nil {
			return nil, fmt.Errorf("schedule warmup %q: %w", warmupSpec, err)
		}
	}

	if syncSpec != "" && usage != nil {
		if _, err := c.AddFunc(syncSpec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			if err := usage.Sync(ctx); err != nil {
				logging.Logger.Error("Usage sync job failed", zap.Error(err))
			}
		}); err != nil {
			return nil, fmt.Errorf("schedule usage sync %q: %w", syncSpec, err)
		}
	}

	return c, nil
}
