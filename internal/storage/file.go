package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"marks_api/internal/models"
)

// fileRecord 用指標欄位區分「欄位不存在」與零值
type fileRecord struct {
	Name  *string  `json:"name"`
	Marks *float64 `json:"marks"`
}

// ReadRecordsFile 讀取 JSON 陣列格式的資料檔，依檔案順序回傳所有紀錄。
// 任何一筆缺少 name 或 marks 都視為整個檔案無效。
func ReadRecordsFile(path string) ([]models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var items []fileRecord
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	if items == nil {
		return nil, fmt.Errorf("failed to parse data file %s: expected a JSON array", path)
	}

	records := make([]models.Record, 0, len(items))
	for i, item := range items {
		if item.Name == nil {
			return nil, fmt.Errorf("record %d in %s: missing field \"name\"", i, path)
		}
		if item.Marks == nil {
			return nil, fmt.Errorf("record %d in %s: missing field \"marks\"", i, path)
		}
		records = append(records, models.Record{
			Name:  *item.Name,
			Marks: *item.Marks,
		})
	}

	return records, nil
}
