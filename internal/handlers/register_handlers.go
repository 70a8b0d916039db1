package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/biztime/cmd/docs"
	portssvc "github.com/SscSPs/biztime/internal/core/ports/services"
	"github.com/SscSPs/biztime/internal/middleware"
	"github.com/SscSPs/biztime/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Pinger reports whether the store is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// db may be nil, in which case /health never touches the store.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	db Pinger,
) {
	r.NoRoute(notFound)

	r.GET("/health", healthHandler(cfg, db))

	api := r.Group(cfg.APIBasePath)
	registerCompanyRoutes(api, services.Company)
	registerInvoiceRoutes(api, services.Invoice)

	setupSwaggerRoutes(r, cfg)
}

// health godoc
// @Summary Liveness check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /health [get]
func healthHandler(cfg *config.Config, db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.EnableDBCheck && db != nil {
			if err := db.Ping(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = cfg.APIBasePath
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
