package middleware

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin middleware from the HTTP config. An empty
// origin list outside production allows all origins; in production it
// denies cross-origin requests.
func CORS(cfg config.HTTPConfig, production bool) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	switch {
	case len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*":
		corsConfig.AllowAllOrigins = true
	case len(cfg.CORSAllowOrigins) > 0:
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	case production:
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	default:
		corsConfig.AllowAllOrigins = true
	}
	if len(cfg.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.CORSAllowHeaders
	}
	// Filename of exported reports
	corsConfig.AddExposeHeaders("Content-Disposition", "Content-Length", RequestIDKey)
	corsConfig.MaxAge = 12 * time.Hour
	return cors.New(corsConfig)
}
