package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"replsite/internal/locale"
	"replsite/internal/model"
	"replsite/pkg/logging"
)

// BundleStore 把语言包存放在 locale_bundles 表中，实现 locale.Loader
type BundleStore struct {
	db      *gorm.DB
	catalog *locale.Catalog
}

var _ locale.Loader = (*BundleStore)(nil)

func NewBundleStore(db *gorm.DB, catalog *locale.Catalog) *BundleStore {
	return &BundleStore{db: db, catalog: catalog}
}

// Load 目录外的语言与缺失的行都视为不存在
func (s *BundleStore) Load(ctx context.Context, l locale.Locale) (locale.Messages, error) {
	if s.catalog != nil && !s.catalog.Supported(l) {
		return nil, &locale.NotFoundError{Locale: l}
	}

	var row model.LocaleBundle
	err := s.db.WithContext(ctx).Where("locale = ?", l.String()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &locale.NotFoundError{Locale: l, Cause: err}
	}
	if err != nil {
		return nil, fmt.Errorf("query locale bundle %s: %w", l, err)
	}

	var msgs locale.Messages
	if err := json.Unmarshal([]byte(row.Content), &msgs); err != nil {
		return nil, fmt.Errorf("decode locale bundle %s: %w", l, err)
	}
	return msgs, nil
}

// Seed 从 source 读取语言包写入数据库。overwrite 为 false 时只补充缺失的语言。
func (s *BundleStore) Seed(ctx context.Context, source locale.Loader, locales []locale.Locale, overwrite bool) (int, error) {
	written := 0
	for _, l := range locales {
		msgs, err := source.Load(ctx, l)
		if err != nil {
			return written, fmt.Errorf("load seed bundle %s: %w", l, err)
		}
		content, err := json.Marshal(msgs)
		if err != nil {
			return written, fmt.Errorf("encode seed bundle %s: %w", l, err)
		}

		row := model.LocaleBundle{Locale: l.String(), Content: string(content)}
		onConflict := clause.OnConflict{DoNothing: true}
		if overwrite {
			onConflict = clause.OnConflict{
				Columns:   []clause.Column{{Name: "locale"}},
				DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
			}
		}

		result := s.db.WithContext(ctx).Clauses(onConflict).Create(&row)
		if result.Error != nil {
			return written, fmt.Errorf("save locale bundle %s: %w", l, result.Error)
		}
		if result.RowsAffected > 0 {
			written++
			logging.Logger.Info("Locale bundle seeded", zap.String("locale", l.String()), zap.Bool("overwrite", overwrite))
		}
	}
	return written, nil
}
