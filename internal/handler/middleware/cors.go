package middleware

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/config"
)

func NewCORSMiddleware(cfg config.ServerConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}
	slog.Info("CORS middleware initialized", "port", cfg.Port)
	return cors.New(corsCfg)
}
