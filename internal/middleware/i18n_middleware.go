package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	thirdPartyI18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"replsite/internal/i18n"
)

// I18nMiddleware 按 Accept-Language 为接口提示信息选择 Localizer
func I18nMiddleware(bundle *thirdPartyI18n.Bundle) gin.HandlerFunc {
	langs := i18n.Languages()
	tags := make([]language.Tag, 0, len(langs)+1)
	tags = append(tags, language.Make(i18n.DefaultLanguage())) // 第一个为无法匹配时的默认值
	for _, l := range langs {
		tags = append(tags, language.Make(l))
	}
	matcher := language.NewMatcher(tags)

	return func(c *gin.Context) {
		if bundle == nil {
			c.Next()
			return
		}

		lang := i18n.DefaultLanguage()
		if accept := c.GetHeader("Accept-Language"); accept != "" {
			wanted, _, err := language.ParseAcceptLanguage(accept)
			if err == nil && len(wanted) > 0 {
				_, idx, conf := matcher.Match(wanted...)
				if conf != language.No {
					base, _ := tags[idx].Base()
					lang = base.String()
				}
			}
		}

		localizer := thirdPartyI18n.NewLocalizer(bundle, lang, i18n.DefaultLanguage())
		c.Set("lang", lang)
		c.Request = c.Request.WithContext(i18n.WithLocalizer(c.Request.Context(), localizer))
		c.Next()
	}
}
