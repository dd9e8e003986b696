package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Logger      = zap.NewNop()                      // 全局 Logger 实例，未初始化前不输出
	AtomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel) // 全局共享日志级别
)

// Options 日志配置
type Options struct {
	Level      string
	Path       string // 为空时只输出到控制台
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // 天
	Compress   bool
}

// OptionsFromConfig 从 viper 读取 log.* 配置并填充默认值
func OptionsFromConfig() Options {
	opts := Options{
		Level:      viper.GetString("log.level"),
		Path:       viper.GetString("log.path"),
		MaxSize:    viper.GetInt("log.max_size"),
		MaxBackups: viper.GetInt("log.max_backups"),
		MaxAge:     viper.GetInt("log.max_age"),
		Compress:   viper.GetBool("log.compress"),
	}
	if opts.Level == "" {
		opts.Level = "info"
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = 10
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 5
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 7
	}
	return opts
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006/01/02 - 15:04:05"))
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New 按配置构建 Logger：控制台 + 可选的 lumberjack 轮转文件
func New(opts Options) (*zap.Logger, zap.AtomicLevel, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zap.InfoLevel
	}
	atomicLevel := zap.NewAtomicLevelAt(level)

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(os.Stdout), atomicLevel),
	}

	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), os.ModePerm); err != nil {
			return nil, atomicLevel, fmt.Errorf("create log directory: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
			LocalTime:  true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(rotator), atomicLevel))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), atomicLevel, nil
}

// InitLoggerFromConfig 初始化全局 Logger 并替换 zap 全局实例
func InitLoggerFromConfig() {
	logger, level, err := New(OptionsFromConfig())
	if err != nil {
		if _, writeErr := fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err); writeErr != nil {
			os.Exit(1)
		}
		return
	}

	Logger = logger
	AtomicLevel = level
	zap.ReplaceGlobals(Logger)

	Logger.Info("InitLoggerFromConfig finished", zap.String("level", level.String()))
}
