package models

// Record 表示一筆 (姓名, 分數) 資料
type Record struct {
	ID    uint    `gorm:"primaryKey" json:"-"`        // 資料表主鍵，決定載入順序
	Name  string  `gorm:"not null;index" json:"name"` // 姓名，可能重複
	Marks float64 `gorm:"not null" json:"marks"`      // 分數
}
