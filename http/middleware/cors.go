package middlewares

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-recipe-service/config"
)

func CORSMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	allowOrigins := []string{}
	for _, domain := range strings.Split(cfg.CORS.AllowDomains, ",") {
		domain = strings.TrimSpace(domain)
		if domain != "" {
			allowOrigins = append(allowOrigins, domain)
		}
	}
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
