package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marks_api/internal/api/handlers"
	"marks_api/internal/middleware"
	"marks_api/internal/service"
	"marks_api/pkg/config"
)

func SetupRoutes(r *gin.Engine, services *service.Services, corsCfg config.CORSConfig) {
	// 初始化 handlers
	marksHandler := handlers.NewMarksHandler(services.Marks)

	// CORS 需掛在最外層，404/405 回應與預檢請求也要經過
	r.Use(middleware.CORS(corsCfg))

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"detail": "Not Found",
		})
	})

	// 路徑存在但方法不符
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"detail": "Method Not Allowed",
		})
	})

	// 分數查詢
	r.GET("/api", marksHandler.GetMarks)

	// 基本的健康檢查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"records": services.Marks.Size(),
		})
	})
}
