package services

import (
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"gorm.io/gorm"
)

// RefreshVoucherStatuses đồng bộ trạng thái voucher theo cửa sổ hiệu lực.
// Job chạy định kỳ, chạy lại bao nhiêu lần cũng cho cùng kết quả.
// Trạng thái chỉ là cache của cửa sổ ngày: phía tính giá vẫn tự kiểm tra
// lại cửa sổ và điều kiện chi tiêu khi áp voucher.
func RefreshVoucherStatuses(db *gorm.DB, now time.Time) (int64, error) {
	today := DateOnly(now)

	expired := db.Model(&models.Voucher{}).
		Where("status = ?", constants.VoucherStatusActive).
		Where("end_date < ?", today).
		Update("status", constants.VoucherStatusExpired)
	if expired.Error != nil {
		return 0, expired.Error
	}

	activated := db.Model(&models.Voucher{}).
		Where("status = ?", constants.VoucherStatusExpired).
		Where("start_date <= ? AND end_date >= ?", today, today).
		Update("status", constants.VoucherStatusActive)
	if activated.Error != nil {
		return expired.RowsAffected, activated.Error
	}

	return expired.RowsAffected + activated.RowsAffected, nil
}
