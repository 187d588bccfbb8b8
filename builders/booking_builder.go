package builders

import (
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithCode thêm mã đặt phòng
func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.booking.BookingCode = code
	return b
}

// WithCustomer thêm thông tin khách hàng
func (b *BookingBuilder) WithCustomer(customerID uint) *BookingBuilder {
	b.booking.CustomerID = customerID
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithVoucher thêm voucher
func (b *BookingBuilder) WithVoucher(voucherID uint) *BookingBuilder {
	b.booking.VoucherID = &voucherID
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithStay thêm khoảng ngày lưu trú
func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithPricing thêm các thành phần giá
func (b *BookingBuilder) WithPricing(roomSubtotal, discountAmount, serviceTotal, totalPrice int64) *BookingBuilder {
	b.booking.RoomSubtotal = roomSubtotal
	b.booking.DiscountAmount = discountAmount
	b.booking.ServiceTotal = serviceTotal
	b.booking.TotalPrice = totalPrice
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
