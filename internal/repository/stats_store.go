package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"replsite/internal/model"
)

// StatsStore 每日访问量落库
type StatsStore struct {
	db *gorm.DB
}

func NewStatsStore(db *gorm.DB) *StatsStore {
	return &StatsStore{db: db}
}

// SaveDailyViews 以 (locale, date) 为键覆盖写入
func (s *StatsStore) SaveDailyViews(ctx context.Context, locale, date string, views int64) error {
	stat := model.LocaleDailyStat{Locale: locale, Date: date, Views: views}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "locale"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"views", "updated_at"}),
	}).Create(&stat).Error
	if err != nil {
		return fmt.Errorf("save daily views %s %s: %w", locale, date, err)
	}
	return nil
}

// ListDailyViews 按日期倒序返回某语言的统计
func (s *StatsStore) ListDailyViews(ctx context.Context, locale string, limit int) ([]model.LocaleDailyStat, error) {
	if limit < 1 || limit > 366 {
		limit = 30
	}
	stats := make([]model.LocaleDailyStat, 0, limit)
	err := s.db.WithContext(ctx).
		Where("locale = ?", locale).
		Order("date DESC").
		Limit(limit).
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("list daily views %s: %w", locale, err)
	}
	return stats, nil
}
