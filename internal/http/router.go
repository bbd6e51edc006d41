package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/config"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/http/handlers"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/http/middleware"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/service"

	_ "github.com/Lozaine/Discod-Ticket-Dashboard/docs"
)

func Router(cfg config.Config, svc *service.DashboardService, pinger handlers.Pinger, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.SecretHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Service: svc,
		Logger:  logger,
	}

	r.GET("/healthz", gin.WrapH(handlers.NewHealthHandler(pinger, logger)))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/guilds", h.GuildsList)
		api.GET("/tickets", h.TicketsList)
		api.GET("/stats", h.Stats)
	}

	admin := api.Group("")
	admin.Use(middleware.DashboardSecret(cfg.DashboardSecret))
	admin.Use(middleware.RateLimit(rate.Limit(cfg.WriteRateLimit), cfg.WriteRateBurst))
	{
		admin.DELETE("/guilds", h.GuildDelete)
		admin.POST("/tickets", h.TicketCreate)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
