package models

import (
	"fmt"
	"time"
)

type Voucher struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Code       string    `json:"code" gorm:"unique;size:30"`
	PercentOff int       `json:"percentOff"` // Phần trăm giảm (0-100)
	MinSpend   int64     `json:"minSpend"`   // Điều kiện áp dụng: tiền phòng tối thiểu, 0 = không yêu cầu
	StartDate  time.Time `json:"startDate"`  // Ngày bắt đầu hiệu lực
	EndDate    time.Time `json:"endDate"`    // Ngày kết thúc hiệu lực (bao gồm)
	Status     string    `json:"status" gorm:"size:20;default:HoatDong"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (v *Voucher) ValidatePercent() error {
	if v.PercentOff < 0 || v.PercentOff > 100 {
		return fmt.Errorf("mức giảm giá phải nằm trong khoảng từ 0 đến 100")
	}
	return nil
}
