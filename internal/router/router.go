package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"invogen/internal/config"
	"invogen/internal/handler"
	"invogen/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, invoiceH *handler.InvoiceHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	corsCfg.AddAllowHeaders("Authorization")
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")
	v1.POST("/generate-template", invoiceH.GenerateTemplate)
	v1.POST("/export", invoiceH.Export)

	return r
}
