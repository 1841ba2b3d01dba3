package repository

import (
	"fmt"

	"marks_api/internal/models"
	"marks_api/internal/storage"
)

type RecordRepository interface {
	// FindAll 依來源順序回傳所有紀錄
	FindAll() ([]models.Record, error)
}

type recordRepository struct {
	db *storage.PostgresDB
}

func NewRecordRepository(db *storage.PostgresDB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) FindAll() ([]models.Record, error) {
	var records []models.Record
	if err := r.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return records, nil
}

type fileRecordRepository struct {
	path string
}

// NewFileRecordRepository 建立以 JSON 資料檔為來源的 RecordRepository
func NewFileRecordRepository(path string) RecordRepository {
	return &fileRecordRepository{path: path}
}

func (r *fileRecordRepository) FindAll() ([]models.Record, error) {
	return storage.ReadRecordsFile(r.path)
}
