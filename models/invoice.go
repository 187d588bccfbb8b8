package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Invoice struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	InvoiceCode   string     `json:"invoiceCode" gorm:"unique;size:30"` // Mã hóa đơn duy nhất
	BookingID     uint       `json:"bookingId" gorm:"uniqueIndex"`      // Mỗi booking một hóa đơn
	Amount        int64      `json:"amount"`                            // Tổng tiền từ booking
	PaymentMethod string     `json:"paymentMethod" gorm:"size:30"`      // TienMat | ChuyenKhoanMomo
	Status        string     `json:"status" gorm:"size:20;default:ChuaThanhToan"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if invoice.InvoiceCode == "" {
		invoice.InvoiceCode = fmt.Sprintf("HD%d", time.Now().UnixNano())
	}

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("InvoiceCode đã tồn tại, hãy thử lại")
	}
	return nil
}
