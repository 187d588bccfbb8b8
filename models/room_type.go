package models

import "time"

type RoomType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description"`
	People      int       `json:"people"` // Sức chứa (số người)
	NumBed      int       `json:"numBed"`
	Price       int64     `json:"price"` // Giá tham khảo cho loại phòng
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
