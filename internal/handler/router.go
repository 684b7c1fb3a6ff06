package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chateudechevrole/tutor-app-yp/internal/handler/api"
	"github.com/chateudechevrole/tutor-app-yp/internal/handler/middleware"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/config"
)

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, bookingHandler *api.BookingHandler) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.Server))
	engine.Use(middleware.RequestLogging(logger))

	engine.GET("/health", healthCheck)
	engine.GET("/bookings/:id", bookingHandler.Get)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
