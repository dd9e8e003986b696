package constant

import (
	"fmt"
	"time"
)

// 常量定义
const (
	BasePrefix = "replsite:"
	Separator  = ":"
)

// Redis 键模板
const (
	Messages     = BasePrefix + "messages" + Separator + "%s" // replsite:messages:fr
	MessagesScan = BasePrefix + "messages" + Separator + "*"  // 用于批量失效
	DailyViews   = BasePrefix + "views" + Separator + "%s"    // replsite:views:yyyyMMdd -> hash(locale -> count)
	TotalViews   = BasePrefix + "total_views"                 // hash(locale -> count)
	DailyTTL     = 3 * 24 * time.Hour                         // 每日计数保留 3 天
)

// GetMessagesKey 生成合并后消息的缓存键
func GetMessagesKey(locale string) string {
	return fmt.Sprintf(Messages, locale)
}

// GetDateKey 生成日期键（格式：yyyyMMdd）
func GetDateKey(t time.Time) string {
	return t.Format("20060102")
}

// GetDailyViewsKey 生成每日访问量键（格式：replsite:views:yyyyMMdd）
func GetDailyViewsKey(date string) string {
	return fmt.Sprintf(DailyViews, date)
}
