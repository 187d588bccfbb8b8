package services

import (
	"errors"
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"gorm.io/gorm"
)

// Quote là kết quả tính giá một lần đặt phòng.
// Toàn bộ số tiền là VND nguyên, không dùng số thực.
type Quote struct {
	Nights         int   `json:"nights"`
	RoomSubtotal   int64 `json:"roomSubtotal"`
	DiscountAmount int64 `json:"discountAmount"`
	ServiceTotal   int64 `json:"serviceTotal"`
	TotalPrice     int64 `json:"totalPrice"`
}

// ServiceSelection là lựa chọn dịch vụ kèm theo của khách
type ServiceSelection struct {
	ServiceID uint `json:"serviceId"`
	Quantity  int  `json:"quantity"`
}

// Nights tính số đêm giữa hai ngày (đã chuẩn hóa về 0h)
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// VoucherDiscount tính tiền giảm từ voucher trên tiền phòng.
// Voucher không hợp lệ, hết hạn hoặc chưa đủ điều kiện chi tiêu thì
// trả về 0 thay vì lỗi, để không chặn khách đặt phòng vì mã khuyến mãi hỏng.
func VoucherDiscount(db *gorm.DB, now time.Time, voucherID uint, roomSubtotal int64) (int64, *models.Voucher) {
	var voucher models.Voucher
	if err := db.First(&voucher, voucherID).Error; err != nil {
		return 0, nil
	}

	if voucher.Status != constants.VoucherStatusActive {
		return 0, &voucher
	}

	today := DateOnly(now)
	if today.Before(DateOnly(voucher.StartDate)) || today.After(DateOnly(voucher.EndDate)) {
		return 0, &voucher
	}

	if voucher.MinSpend > 0 && roomSubtotal < voucher.MinSpend {
		return 0, &voucher
	}

	return roomSubtotal * int64(voucher.PercentOff) / 100, &voucher
}

// BuildQuote tính giá phòng, áp voucher và chốt giá dịch vụ kèm theo.
// Dịch vụ được chụp lại tên và đơn giá tại thời điểm đặt, và không
// nằm trong phạm vi giảm giá của voucher.
func BuildQuote(db *gorm.DB, now time.Time, room *models.Room, checkIn, checkOut time.Time, voucherID *uint, selections []ServiceSelection) (Quote, []models.BookedService, error) {
	var quote Quote

	quote.Nights = Nights(checkIn, checkOut)
	if quote.Nights <= 0 {
		return quote, nil, errors.New("ngày trả phòng phải sau ngày nhận phòng")
	}

	quote.RoomSubtotal = room.Price * int64(quote.Nights)

	if voucherID != nil && *voucherID != 0 {
		quote.DiscountAmount, _ = VoucherDiscount(db, now, *voucherID, quote.RoomSubtotal)
	}

	var lines []models.BookedService
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			continue
		}

		var service models.Service
		if err := db.First(&service, sel.ServiceID).Error; err != nil {
			return quote, nil, errors.New("dịch vụ không tồn tại")
		}

		line := models.BookedService{
			ServiceID:   service.ID,
			ServiceName: service.Name,
			UnitPrice:   service.Price,
			Quantity:    sel.Quantity,
			LineTotal:   service.Price * int64(sel.Quantity),
		}
		quote.ServiceTotal += line.LineTotal
		lines = append(lines, line)
	}

	quote.TotalPrice = quote.RoomSubtotal - quote.DiscountAmount + quote.ServiceTotal
	return quote, lines, nil
}
