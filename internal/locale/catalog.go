package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale 语言标识，例如 "en-nz"、"zh-tw"
type Locale string

func (l Locale) String() string {
	return string(l)
}

// 固定的语言标识
const (
	EnglishNZ Locale = "en-nz"
	EnglishUS Locale = "en-us"
	French    Locale = "fr"
	ChineseTW Locale = "zh-tw"
	ChineseSG Locale = "zh-sg"
	German    Locale = "de"
)

// DefaultBase 通用底包
const DefaultBase = EnglishNZ

// Entry 目录中的一项：语言标识 + 显示名称
type Entry struct {
	ID   Locale `json:"id"`
	Name string `json:"name"`
}

// Catalog 封闭的语言目录，顺序即语言选择器的展示顺序
type Catalog struct {
	entries []Entry
	index   map[Locale]string
}

// NewCatalog 根据条目构造目录
func NewCatalog(entries ...Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[Locale]string, len(entries)),
	}
	for _, e := range entries {
		if _, dup := c.index[e.ID]; dup {
			continue
		}
		c.entries = append(c.entries, e)
		c.index[e.ID] = e.Name
	}
	return c
}

// DefaultCatalog 站点支持的语言
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Entry{ID: EnglishNZ, Name: "English"},
		Entry{ID: EnglishUS, Name: "English US"},
		Entry{ID: French, Name: "Français"},
		Entry{ID: ChineseTW, Name: "漢語"},
		Entry{ID: ChineseSG, Name: "中文"},
		Entry{ID: German, Name: "Deutsch"},
	)
}

// Supported 判断语言是否属于目录
func (c *Catalog) Supported(l Locale) bool {
	_, ok := c.index[l]
	return ok
}

// Name 返回显示名称，不支持的语言返回空串
func (c *Catalog) Name(l Locale) string {
	return c.index[l]
}

// Entries 返回目录条目的副本
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Locales 返回全部语言标识
func (c *Catalog) Locales() []Locale {
	out := make([]Locale, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.ID)
	}
	return out
}

// Tags 返回与 Locales 顺序一致的 BCP 47 标签
func (c *Catalog) Tags() []language.Tag {
	tags := make([]language.Tag, 0, len(c.entries))
	for _, e := range c.entries {
		tags = append(tags, language.Make(string(e.ID)))
	}
	return tags
}

// Match 按 Accept-Language 选择最合适的目录语言，无法匹配时返回第一项
func (c *Catalog) Match(acceptLanguage string) Locale {
	if len(c.entries) == 0 {
		return DefaultBase
	}
	fallback := c.entries[0].ID

	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return fallback
	}

	matcher := language.NewMatcher(c.Tags())
	for _, tag := range wanted {
		// 完全相同的标识优先，避免 matcher 把 en-US 归到 en-NZ
		if l := Locale(strings.ToLower(tag.String())); c.Supported(l) {
			return l
		}
		if _, idx, conf := matcher.Match(tag); conf >= language.High {
			return c.entries[idx].ID
		}
	}
	return fallback
}
