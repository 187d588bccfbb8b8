package models

import (
	"fmt"
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
)

type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RoomName    string    `json:"roomName" gorm:"size:100;not null"`
	RoomTypeID  uint      `json:"roomTypeId"`
	RoomType    RoomType  `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Price       int64     `json:"price"` // Giá mỗi đêm (VND)
	Description string    `json:"description"`
	Status      string    `json:"status" gorm:"size:20;default:ConTrong"`
	Avatar      string    `json:"avatar"` // Tên file ảnh, lưu trữ bên ngoài
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusReserved,
		constants.RoomStatusCleaning, constants.RoomStatusRepair:
		return nil
	}
	return fmt.Errorf("trạng thái phòng không hợp lệ: %s", r.Status)
}
