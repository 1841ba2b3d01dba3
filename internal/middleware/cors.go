package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marks_api/pkg/config"
)

// CORS 依設定建立跨來源中間件，allow_origins 含 "*" 時允許任何來源
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: cfg.AllowMethods,
		AllowHeaders: cfg.AllowHeaders,
		MaxAge:       time.Duration(cfg.MaxAge) * time.Second,
	}

	// gin-contrib/cors 不允許 AllowAllOrigins 與 AllowOrigins 同時設定
	if contains(cfg.AllowOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}

	return cors.New(corsConfig)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
