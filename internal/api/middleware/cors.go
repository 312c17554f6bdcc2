package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS builds the CORS policy from a comma-separated domain list.
// "*" allows everything, which is only meant for development.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if allowedDomains == "*" {
		conf.AllowAllOrigins = true
	} else {
		for _, domain := range strings.Split(allowedDomains, ",") {
			if trimmed := strings.TrimSpace(domain); trimmed != "" {
				conf.AllowOrigins = append(conf.AllowOrigins, trimmed)
			}
		}
	}

	return cors.New(conf)
}
