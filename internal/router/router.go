package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"replsite/internal/handler"
	"replsite/internal/i18n"
	"replsite/internal/middleware"
	"replsite/internal/service"
	"replsite/pkg/utils"
	"replsite/response"
	"replsite/web"
)

// Deps 路由依赖
type Deps struct {
	Logger   *zap.Logger
	Bundle   *goi18n.Bundle
	Messages *service.MessageService
	Usage    *service.UsageService
}

// New 组装 gin 引擎
func New(d Deps) (*gin.Engine, error) {
	if err := utils.RegisterValidators(); err != nil {
		return nil, err
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	// 指标与访问日志在错误中间件外层，才能拿到错误响应写出后的状态码
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.ZapGinLogger(logger))
	// 注册全局错误中间件
	r.Use(middleware.GlobalErrorMiddleware())
	r.Use(middleware.CorsMiddleware())
	r.Use(middleware.I18nMiddleware(d.Bundle))

	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OK("", "ok"))
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	messages := handler.NewMessagesHandler(d.Messages)
	stats := handler.NewStatsHandler(d.Messages, d.Usage)
	api := r.Group("/api")
	{
		api.GET("/locales", messages.ListLocales)
		api.GET("/messages/:locale", messages.GetMessages)
		api.GET("/stats/:locale", stats.GetDailyViews)
	}

	pages := handler.NewPageHandler(d.Messages, d.Usage)
	r.GET("/", pages.Index)
	r.GET("/:locale", pages.Page)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, response.Error(i18n.TOr(c.Request.Context(), "error.not_found", "Not found", nil)))
			return
		}
		pages.NotFound(c)
	})

	return r, nil
}
