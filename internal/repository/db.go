package repository

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"replsite/internal/model"
	"replsite/pkg/logging"
)

var DB *gorm.DB

// InitDB 连接 MySQL 并迁移表结构。db.dsn 为空时不连接，DB 保持 nil。
func InitDB(logger *zap.Logger, atomicLogLevel zap.AtomicLevel) {
	dsn := viper.GetString("db.dsn")
	if dsn == "" {
		logger.Info("db.dsn not set, database disabled")
		return
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logging.NewGormLogger(logger, logging.ToGormLogLevel(atomicLogLevel.Level())),
	})
	if err != nil {
		logger.Fatal("Failed to connect database", zap.Error(err))
	}

	if err := Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	DB = db
}

// Migrate 迁移全部表结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.LocaleBundle{}, &model.LocaleDailyStat{})
}

// CloseDB 关闭底层连接池
func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logging.Logger.Warn("Failed to get sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logging.Logger.Warn("Database close failed", zap.Error(err))
	}
}
