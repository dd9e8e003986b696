package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"replsite/internal/apperrors"
	"replsite/internal/dto"
	"replsite/internal/i18n"
	"replsite/internal/service"
	"replsite/pkg/logging"
	"replsite/pkg/utils"
	"replsite/response"
)

// StatsHandler 页面访问量接口
type StatsHandler struct {
	messages *service.MessageService
	usage    *service.UsageService
}

func NewStatsHandler(messages *service.MessageService, usage *service.UsageService) *StatsHandler {
	return &StatsHandler{messages: messages, usage: usage}
}

// GetDailyViews 某语言每日访问量（GET /api/stats/:locale?days=30）
func (h *StatsHandler) GetDailyViews(c *gin.Context) {
	l, appErr := bindLocale(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if !h.messages.Catalog().Supported(l) {
		_ = c.Error(apperrors.LocaleNotFoundError(l.String()))
		return
	}

	var query dto.StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logging.Logger.Warn("Invalid stats query", zap.String("query", c.Request.URL.RawQuery), zap.Error(err))
		msgID := utils.BindingMessageID(&query, err)
		if msgID == "" {
			msgID = "error.invalid_request"
		}
		_ = c.Error(apperrors.Localized(http.StatusBadRequest, msgID, "Invalid request", nil).Wrap(err))
		return
	}

	stats, err := h.usage.History(c.Request.Context(), l, query.Days)
	if err != nil {
		_ = c.Error(apperrors.SystemErrorDefault().Wrap(err))
		return
	}

	items := make([]dto.DailyViewsItem, 0, len(stats))
	for _, s := range stats {
		items = append(items, dto.DailyViewsItem{Date: s.Date, Views: s.Views})
	}
	c.JSON(http.StatusOK, response.OK(items, i18n.TOr(c.Request.Context(), "success", "success", nil)))
}
