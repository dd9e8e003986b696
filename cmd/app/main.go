package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"replsite/internal/cache"
	"replsite/internal/i18n"
	"replsite/internal/locale"
	"replsite/internal/repository"
	"replsite/internal/router"
	"replsite/internal/service"
	"replsite/messages"
	"replsite/pkg/logging"
)

func initConfig() {
	// .env 可选，变量也可以直接由环境提供
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	wd, _ := os.Getwd()
	log.Printf("Loading config from: %s/config.yaml", wd)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("replsite")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("catalog.source", "embedded")
	viper.SetDefault("cache.driver", cache.DriverLRU)
	viper.SetDefault("cache.size", 32)
	viper.SetDefault("cache.ttl", time.Hour)
	viper.SetDefault("i18n.default", "en")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
}

// newLoader 按 catalog.source 选择语言包来源；database 模式同时返回可写的 BundleStore
func newLoader(catalog *locale.Catalog, embedded locale.Loader) (locale.Loader, *repository.BundleStore) {
	switch source := viper.GetString("catalog.source"); source {
	case "embedded":
		return embedded, nil
	case "database":
		if repository.DB == nil {
			logging.Logger.Fatal("catalog.source is database but db.dsn is empty")
		}
		store := repository.NewBundleStore(repository.DB, catalog)
		return store, store
	default:
		logging.Logger.Fatal("Unknown catalog.source", zap.String("source", source))
		return nil, nil
	}
}

// newCache 按 cache.driver 选择缓存
func newCache() cache.Cache {
	ttl := viper.GetDuration("cache.ttl")

	switch driver := viper.GetString("cache.driver"); driver {
	case cache.DriverLRU:
		return cache.NewLRU(viper.GetInt("cache.size"), ttl)
	case cache.DriverRedis:
		if repository.RedisPool == nil {
			logging.Logger.Warn("cache.driver is redis but redis.addr is empty, falling back to lru")
			return cache.NewLRU(viper.GetInt("cache.size"), ttl)
		}
		return cache.NewRedis(repository.RedisPool, ttl)
	case cache.DriverNone:
		return cache.Noop{}
	default:
		logging.Logger.Fatal("Unknown cache.driver", zap.String("driver", driver))
		return nil
	}
}

func startServer(r *gin.Engine, stop func()) {
	addr := viper.GetString("server.addr")

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Logger.Info("Server is running on " + addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	stop()
	logging.Logger.Info("Server exiting")
}

func main() {
	initConfig()
	logging.InitLoggerFromConfig()
	defer func() { _ = logging.Logger.Sync() }()

	logging.Logger.Info("Application started")

	gin.SetMode(viper.GetString("server.mode"))

	repository.InitDB(logging.Logger, logging.AtomicLevel)
	repository.InitRedis()

	bundle, err := i18n.InitI18n(viper.GetStringSlice("i18n.files"), viper.GetString("i18n.default"))
	if err != nil {
		logging.Logger.Fatal("Failed to initialize i18n", zap.Error(err))
	}

	ctx := context.Background()
	catalog := locale.DefaultCatalog()
	embedded := locale.NewFSLoader(messages.FS, ".", catalog)
	loader, store := newLoader(catalog, embedded)
	messageService := service.NewMessageService(locale.NewResolver(loader, locale.DefaultPolicy()), catalog, newCache())

	// 用内置语言包补齐数据库；seed_overwrite 为 true 时覆盖已有内容并清空缓存
	if store != nil && viper.GetBool("catalog.seed") {
		if _, err := messageService.Reseed(ctx, store, embedded, viper.GetBool("catalog.seed_overwrite")); err != nil {
			logging.Logger.Fatal("Failed to seed locale bundles", zap.Error(err))
		}
	}

	var statsStore *repository.StatsStore
	if repository.DB != nil {
		statsStore = repository.NewStatsStore(repository.DB)
	}
	usageService := service.NewUsageService(repository.RedisPool, statsStore)

	// 启动前预热一次，语言包缺失属于构建问题，直接退出
	if err := messageService.Warmup(ctx); err != nil {
		logging.Logger.Fatal("Locale bundles are incomplete", zap.Error(err))
	}

	r, err := router.New(router.Deps{
		Logger:   logging.Logger,
		Bundle:   bundle,
		Messages: messageService,
		Usage:    usageService,
	})
	if err != nil {
		logging.Logger.Fatal("Failed to build router", zap.Error(err))
	}

	c, err := service.NewScheduler(messageService, usageService,
		viper.GetString("cache.warmup_cron"), viper.GetString("stats.sync_cron"))
	if err != nil {
		logging.Logger.Fatal("Failed to schedule cron job", zap.Error(err))
	}
	c.Start()

	startServer(r, func() {
		<-c.Stop().Done()
		repository.CloseRedis()
		repository.CloseDB()
	})
}
