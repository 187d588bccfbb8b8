package models

import "time"

// Service là dịch vụ kèm theo (spa, ăn uống...) khách có thể đặt cùng phòng.
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Price       int64     `json:"price"` // Đơn giá hiện tại (VND)
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Status      int       `json:"status" gorm:"default:1"` // 1: đang mở, 0: ngừng
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BookedService là dòng dịch vụ gắn với booking, chụp lại tên và đơn giá
// tại thời điểm đặt để không bị ảnh hưởng khi dịch vụ đổi giá về sau.
type BookedService struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BookingID   uint      `json:"bookingId" gorm:"index"`
	ServiceID   uint      `json:"serviceId"`
	ServiceName string    `json:"serviceName" gorm:"size:100"`
	UnitPrice   int64     `json:"unitPrice"`
	Quantity    int       `json:"quantity"`
	LineTotal   int64     `json:"lineTotal"`
	Done        bool      `json:"done" gorm:"default:false"` // Đã phục vụ xong hay chưa
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
