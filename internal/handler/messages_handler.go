package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"replsite/internal/apperrors"
	"replsite/internal/dto"
	"replsite/internal/i18n"
	"replsite/internal/locale"
	"replsite/internal/service"
	"replsite/pkg/logging"
	"replsite/pkg/utils"
	"replsite/response"
)

// MessagesHandler 语言目录与合并后消息的 JSON 接口
type MessagesHandler struct {
	messages *service.MessageService
}

func NewMessagesHandler(messages *service.MessageService) *MessagesHandler {
	return &MessagesHandler{messages: messages}
}

// ListLocales 支持的语言（GET /api/locales）
func (h *MessagesHandler) ListLocales(c *gin.Context) {
	entries := h.messages.Catalog().Entries()
	items := make([]dto.LocaleItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.LocaleItem{ID: e.ID.String(), Name: e.Name})
	}
	c.JSON(http.StatusOK, response.OK(items, i18n.TOr(c.Request.Context(), "success", "success", nil)))
}

// GetMessages 合并后的消息（GET /api/messages/:locale）
func (h *MessagesHandler) GetMessages(c *gin.Context) {
	l, appErr := bindLocale(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	msgs, err := h.messages.Messages(c.Request.Context(), l)
	if err != nil {
		_ = c.Error(resolveError(l, err))
		return
	}

	c.JSON(http.StatusOK, response.OK(msgs, i18n.TOr(c.Request.Context(), "success", "success", nil)))
}

// bindLocale 绑定并校验 :locale
func bindLocale(c *gin.Context) (locale.Locale, *apperrors.AppError) {
	var req dto.LocaleURI
	if err := c.ShouldBindUri(&req); err != nil {
		logging.Logger.Warn("Invalid locale parameter",
			zap.String("locale", c.Param("locale")),
			zap.Error(err))
		if msgID := utils.BindingMessageID(&req, err); msgID != "" {
			return "", apperrors.Localized(http.StatusBadRequest, msgID, "Invalid locale", nil).Wrap(err)
		}
		return "", apperrors.InvalidRequestErrorDefault().Wrap(err)
	}
	return req.Normalized(), nil
}

func resolveError(l locale.Locale, err error) *apperrors.AppError {
	if errors.Is(err, locale.ErrLocaleNotFound) {
		return apperrors.LocaleNotFoundError(l.String()).Wrap(err)
	}
	return apperrors.SystemErrorDefault().Wrap(err)
}
