package services

import (
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"gorm.io/gorm"
)

// PaidSpend tính tổng chi tiêu đã thanh toán của khách: cộng tiền các hóa
// đơn DaThanhToan thuộc booking đã trả phòng. Tiền là VND nguyên nên phép
// cộng là số nguyên chính xác.
func PaidSpend(db *gorm.DB, customerID uint) (int64, error) {
	var total int64
	err := db.Model(&models.Invoice{}).
		Select("COALESCE(SUM(invoices.amount), 0)").
		Joins("JOIN bookings ON bookings.id = invoices.booking_id").
		Where("bookings.customer_id = ?", customerID).
		Where("bookings.status = ?", constants.BookingStatusCheckedOut).
		Where("invoices.status = ?", constants.InvoiceStatusPaid).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// RecomputeTier tính lại hạng thành viên sau mỗi lần trả phòng: chọn hạng
// cao nhất có ngưỡng <= tổng chi tiêu, chỉ ghi khi hạng thay đổi.
// Chạy lại nhiều lần không đổi kết quả.
func RecomputeTier(db *gorm.DB, customerID uint) error {
	var customer models.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		return err
	}

	total, err := PaidSpend(db, customerID)
	if err != nil {
		return err
	}

	var tiers []models.Membership
	if err := db.Order("min_spend DESC").Find(&tiers).Error; err != nil {
		return err
	}

	for _, tier := range tiers {
		if tier.MinSpend <= total {
			if customer.MembershipID == nil || *customer.MembershipID != tier.ID {
				return db.Model(&customer).Update("membership_id", tier.ID).Error
			}
			return nil
		}
	}
	return nil
}
