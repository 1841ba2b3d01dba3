package service

import (
	"fmt"

	"marks_api/internal/models"
)

// LookupTable 是啟動時建立的 name -> marks 對照表，建立後不再修改，
// 因此可在多個請求間不加鎖地並行讀取。
type LookupTable struct {
	marks map[string]float64
}

// NewLookupTable 依紀錄順序建立對照表，重複的姓名以最後一筆為準
func NewLookupTable(records []models.Record) *LookupTable {
	marks := make(map[string]float64, len(records))
	for _, r := range records {
		marks[r.Name] = r.Marks
	}
	return &LookupTable{marks: marks}
}

func (t *LookupTable) Mark(name string) (float64, bool) {
	m, ok := t.marks[name]
	return m, ok
}

// Len 回傳不重複的姓名數量
func (t *LookupTable) Len() int {
	return len(t.marks)
}

// NameNotFoundError 表示批次查詢中第一個找不到的姓名
type NameNotFoundError struct {
	Name string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("Name '%s' not found", e.Name)
}

type MarksService struct {
	table *LookupTable
}

func NewMarksService(table *LookupTable) *MarksService {
	return &MarksService{table: table}
}

// Resolve 依請求順序查詢每個姓名。遇到第一個不存在的姓名立即回傳
// *NameNotFoundError，不回傳部分結果。
func (s *MarksService) Resolve(names []string) ([]float64, error) {
	result := make([]float64, 0, len(names))
	for _, name := range names {
		m, ok := s.table.Mark(name)
		if !ok {
			return nil, &NameNotFoundError{Name: name}
		}
		result = append(result, m)
	}
	return result, nil
}

// Size 回傳對照表中的姓名數量
func (s *MarksService) Size() int {
	return s.table.Len()
}
