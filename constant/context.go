package constant

type contextKey string

// LocalizerContextKey 请求上下文中 go-i18n Localizer 的键
const LocalizerContextKey contextKey = "i18n.Localizer"

// LanguageContextKey 请求上下文中 API 语言的键
const LanguageContextKey contextKey = "i18n.Language"
