package models

import "time"

// Membership là bảng tham chiếu hạng thành viên, xếp theo ngưỡng chi tiêu.
type Membership struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	MinSpend    int64     `json:"minSpend"` // Ngưỡng chi tiêu tích lũy tối thiểu (VND)
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
