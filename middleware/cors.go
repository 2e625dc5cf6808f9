package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS lets the canteen frontend call the API from any origin
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AddAllowHeaders(RequestIDHeader, "Accept", "Authorization")
	cfg.ExposeHeaders = []string{RequestIDHeader}
	return cors.New(cfg)
}
