package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ignatzorin/jovial-backend/internal/config"
	"github.com/ignatzorin/jovial-backend/internal/http/handlers"
	"github.com/ignatzorin/jovial-backend/internal/http/middleware"
	"github.com/ignatzorin/jovial-backend/internal/models"
)

func SetupRouter(
	cfg *config.Config,
	tokens middleware.TokenParser,
	gatherer prometheus.Gatherer,
	healthHandler *handlers.HealthHandler,
	portfolioHandler *handlers.PortfolioHandler,
	videoHandler *handlers.VideoHandler,
	orderHandler *handlers.OrderHandler,
	contactHandler *handlers.ContactHandler,
	seedHandler *handlers.SeedHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")
	api.Use(middleware.Authenticate(tokens))

	if seedHandler != nil && cfg.Env == "development" {
		api.POST("/seed", seedHandler.Seed)
	}

	// Публичные поверхности портфолио
	api.GET("/portfolio", portfolioHandler.GetPortfolio)
	home := api.Group("/home")
	{
		home.GET("/preview", portfolioHandler.GetHomePreview)
		home.GET("/gallery", portfolioHandler.GetHomeGallery)
	}

	api.POST("/contact",
		middleware.RateLimitMiddleware("contact", cfg.RateLimitLimit, cfg.RateLimitPeriod),
		contactHandler.Compose,
	)

	// Управление роликами доступно только владельцу студии
	owner := api.Group("/owner")
	owner.Use(middleware.RequireRole(models.RoleOwner))
	owner.Use(middleware.RateLimitMiddleware("owner", cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		owner.POST("/videos", videoHandler.Upload)
		owner.GET("/videos/:id", middleware.UUIDValidator("id"), videoHandler.Get)
		owner.PUT("/videos/:id", middleware.UUIDValidator("id"), videoHandler.Edit)
		owner.DELETE("/videos/:id", middleware.UUIDValidator("id"), videoHandler.Delete)
	}

	// Кабинет клиента
	customer := api.Group("")
	customer.Use(middleware.RequireRole(models.RoleCustomer))
	{
		customer.POST("/orders", orderHandler.Submit)
		customer.GET("/orders/my", orderHandler.ListMine)
		customer.GET("/purchases/my", orderHandler.ListPurchases)
	}

	return r
}
