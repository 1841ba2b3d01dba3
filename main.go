package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"marks_api/internal/api"
	"marks_api/internal/models"
	"marks_api/internal/repository"
	"marks_api/internal/service"
	"marks_api/internal/storage"
	"marks_api/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從設定檔、環境變數與預設值取得監聽位址、資料來源等設置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	// 依設定選擇資料來源
	var repos *repository.Repositories
	switch cfg.Data.Source {
	case config.SourcePostgres:
		db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		// 確保在程序結束時關閉數據庫連接
		defer db.Close()

		if cfg.DB.Migrate {
			if err := db.AutoMigrate(&models.Record{}); err != nil {
				log.Fatalf("Failed to auto migrate database: %v", err)
			}
		}
		repos = repository.NewRepositories(db)
	default:
		repos = repository.NewFileRepositories(cfg.Data.Path)
	}

	// 載入資料並建立查詢表
	// 資料無效時不啟動服務
	records, err := repos.Record.FindAll()
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}
	table := service.NewLookupTable(records)
	log.Printf("Loaded %d records (%d distinct names) from %s source", len(records), table.Len(), cfg.Data.Source)

	// 初始化 services
	services := service.NewServices(table)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services, cfg.CORS)

	// 啟動伺服器
	log.Printf("Listening on %s", cfg.Server.Address())
	if err := r.Run(cfg.Server.Address()); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
