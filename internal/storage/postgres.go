package storage

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresDB 是 data.source 為 postgres 時的紀錄來源。
// 服務只在啟動時讀取一次 records 資料表，之後不再存取資料庫。
type PostgresDB struct {
	*gorm.DB
}

// NewPostgresDB 依連線設定開啟 PostgreSQL，用於載入 records 資料表
func NewPostgresDB(host, user, password, dbname string, port int) (*PostgresDB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		host, user, password, dbname, port)

	return openPostgres(postgres.Open(dsn))
}

// NewPostgresDBWithConn 以既有的 *sql.DB 建立 PostgresDB
func NewPostgresDBWithConn(conn *sql.DB) (*PostgresDB, error) {
	return openPostgres(postgres.New(postgres.Config{Conn: conn}))
}

func openPostgres(dialector gorm.Dialector) (*PostgresDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{DB: db}, nil
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate 自動遷移資料庫結構 (db.migrate 開啟時建立 records 資料表)
func (db *PostgresDB) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}
