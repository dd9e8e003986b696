// Package i18n 接口自身的提示信息（错误、成功提示）翻译，基于 go-i18n。
// 页面语言包的合并见 internal/locale。
package i18n

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"replsite/constant"
)

var (
	mu sync.RWMutex
	// SupportedLanguages 已加载的语言，顺序与文件顺序一致
	SupportedLanguages []string
	defaultBundle      *i18n.Bundle
	defaultLanguage    = "en"
)

// InitI18n 加载 TOML 翻译文件，文件名即语言标签（en.toml -> en）
func InitI18n(filePaths []string, defaultLang string) (*i18n.Bundle, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, err
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	langs := make([]string, 0, len(filePaths))
	for _, filePath := range filePaths {
		file, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(file, filePath); err != nil {
			return nil, err
		}
		langs = append(langs, extractLanguageFromPath(filePath))
	}

	mu.Lock()
	SupportedLanguages = langs
	defaultBundle = bundle
	defaultLanguage = tag.String()
	mu.Unlock()

	return bundle, nil
}

// Languages 返回已加载语言的副本
func Languages() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(SupportedLanguages))
	copy(out, SupportedLanguages)
	return out
}

// DefaultLanguage 默认语言
func DefaultLanguage() string {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLanguage
}

// 从文件路径中提取语言标签（假设文件名格式为 <lang>.toml）
func extractLanguageFromPath(filePath string) string {
	baseName := filepath.Base(filePath)
	return strings.TrimSuffix(baseName, filepath.Ext(baseName))
}

// WithLocalizer 把 Localizer 放入上下文
func WithLocalizer(ctx context.Context, localizer *i18n.Localizer) context.Context {
	return context.WithValue(ctx, constant.LocalizerContextKey, localizer)
}

func localizerFrom(ctx context.Context) *i18n.Localizer {
	if l, ok := ctx.Value(constant.LocalizerContextKey).(*i18n.Localizer); ok {
		return l
	}
	mu.RLock()
	defer mu.RUnlock()
	if defaultBundle == nil {
		return nil
	}
	return i18n.NewLocalizer(defaultBundle, defaultLanguage)
}

// T 翻译 key，找不到翻译时返回 key 本身
func T(ctx context.Context, key string, data map[string]interface{}) string {
	return TOr(ctx, key, key, data)
}

// TOr 翻译 key，找不到翻译时返回 fallback
func TOr(ctx context.Context, key, fallback string, data map[string]interface{}) string {
	localizer := localizerFrom(ctx)
	if localizer == nil || key == "" {
		return fallback
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
