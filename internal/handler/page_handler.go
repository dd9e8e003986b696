package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"replsite/internal/dto"
	"replsite/internal/locale"
	"replsite/internal/service"
	"replsite/pkg/logging"
)

// PageHandler 终端页面。终端本身由前端脚本挂载到 #terminal，这里只负责本地化文本。
type PageHandler struct {
	messages *service.MessageService
	usage    *service.UsageService
}

func NewPageHandler(messages *service.MessageService, usage *service.UsageService) *PageHandler {
	return &PageHandler{messages: messages, usage: usage}
}

// pageView 模板数据
type pageView struct {
	Lang     string
	Locales  []dto.LocaleItem
	Messages locale.Messages
}

// T 按 "Section.key" 取文本，缺失时返回路径本身
func (v pageView) T(path string) string {
	if s, ok := v.Messages.Lookup(strings.Split(path, ".")...); ok {
		return s
	}
	return path
}

// Index 按 Accept-Language 跳转到对应语言（GET /）
func (h *PageHandler) Index(c *gin.Context) {
	l := h.messages.Catalog().Match(c.GetHeader("Accept-Language"))
	c.Header("Vary", "Accept-Language")
	c.Redirect(http.StatusFound, "/"+l.String())
}

// Page 渲染某语言的页面（GET /:locale）
func (h *PageHandler) Page(c *gin.Context) {
	l, appErr := bindLocale(c)
	if appErr != nil {
		h.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	msgs, err := h.messages.Messages(ctx, l)
	if err != nil {
		if errors.Is(err, locale.ErrLocaleNotFound) {
			h.NotFound(c)
			return
		}
		_ = c.Error(resolveError(l, err))
		return
	}

	if h.usage != nil {
		h.usage.Record(ctx, l)
	}

	c.HTML(http.StatusOK, "page.tmpl", pageView{
		Lang:     l.String(),
		Locales:  h.localeItems(l),
		Messages: msgs,
	})
}

func (h *PageHandler) localeItems(current locale.Locale) []dto.LocaleItem {
	entries := h.messages.Catalog().Entries()
	items := make([]dto.LocaleItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.LocaleItem{ID: e.ID.String(), Name: e.Name, Current: e.ID == current})
	}
	return items
}

// NotFound 用 Accept-Language 对应语言渲染 404 页面
func (h *PageHandler) NotFound(c *gin.Context) {
	l := h.messages.Catalog().Match(c.GetHeader("Accept-Language"))
	msgs, err := h.messages.Messages(c.Request.Context(), l)
	if err != nil {
		logging.Logger.Error("Failed to resolve messages for 404 page",
			zap.String("locale", l.String()),
			zap.Error(err))
		msgs = locale.Messages{}
	}
	c.HTML(http.StatusNotFound, "not_found.tmpl", pageView{Lang: l.String(), Messages: msgs})
}
