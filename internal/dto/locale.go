package dto

import (
	"strings"

	"replsite/internal/locale"
)

// LocaleURI 路径参数 :locale
type LocaleURI struct {
	Locale string `uri:"locale" binding:"required,max=16,localetag" msg:"error.locale_invalid"`
}

// Normalized 语言标识统一小写
func (r LocaleURI) Normalized() locale.Locale {
	return locale.Locale(strings.ToLower(r.Locale))
}

// LocaleItem 语言列表项
type LocaleItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Current bool   `json:"current,omitempty"`
}

// StatsQuery 访问量查询参数
type StatsQuery struct {
	Days int `form:"days" binding:"omitempty,min=1,max=366" msg:"error.invalid_request"`
}

// DailyViewsItem 某天的访问量
type DailyViewsItem struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}
