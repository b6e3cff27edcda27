package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"content-api/internal/config"
	"content-api/internal/handler"
	"content-api/internal/health"
	"content-api/internal/middleware"
	"content-api/internal/service"
	"content-api/internal/validator"
)

// newRouter wires middleware and routes. Content routes sit behind the rate
// limiter and the store gate; probes and metrics do not.
func newRouter(cfg *config.Config, content service.ContentServiceInterface, monitor *health.Monitor) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	router.Use(gin.CustomRecovery(handler.Recovery))
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.AccessLog())
	router.Use(middleware.Metrics("/metrics", "/live", "/ready"))
	router.Use(middleware.BodyLimit(middleware.DefaultMaxBodyBytes))
	router.NoRoute(handler.NoRoute)

	v := validator.NewValidator()
	healthHandler := handler.NewHealthHandler(monitor, cfg.Env)
	articleHandler := handler.NewArticleHandler(content, v)
	categoryHandler := handler.NewCategoryHandler(content)
	authorHandler := handler.NewAuthorHandler(content)

	// Health and metrics endpoints
	router.GET("/", healthHandler.Root)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(cfg.APIPrefix)
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/health/detailed", healthHandler.Detailed)
	}

	gated := api.Group("",
		middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		middleware.RequireStore(monitor),
	)
	{
		articles := gated.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/editors-picks", articleHandler.EditorsPicks)
			articles.GET("/latest", articleHandler.Latest)
			articles.GET("/slugs", articleHandler.Slugs)
			articles.GET("/slug/:slug", articleHandler.BySlug)
			articles.GET("/category/:categorySlug", articleHandler.ByCategory)
			articles.GET("/:id/related", articleHandler.Related)
		}

		categories := gated.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:slug", categoryHandler.BySlug)
		}

		authors := gated.Group("/authors")
		{
			authors.GET("", authorHandler.List)
			authors.GET("/:id", authorHandler.ByID)
		}
	}

	return router, nil
}
