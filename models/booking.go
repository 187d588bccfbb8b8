package models

import (
	"time"
)

type Booking struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	BookingCode  string    `json:"bookingCode" gorm:"unique;size:30"` // Mã đặt phòng, dùng làm orderId thanh toán
	CustomerID   uint      `json:"customerId" gorm:"index"`
	Customer     Customer  `json:"customer" gorm:"foreignKey:CustomerID"`
	RoomID       uint      `json:"roomId" gorm:"index"`
	Room         Room      `json:"room" gorm:"foreignKey:RoomID"`
	VoucherID    *uint     `json:"voucherId"`
	Voucher      *Voucher  `json:"voucher,omitempty" gorm:"foreignKey:VoucherID"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"index"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"index"`

	Status       string     `json:"status" gorm:"size:20;default:ChoXacNhan"`
	CancelReason string     `json:"cancelReason"`
	CheckedOutAt *time.Time `json:"checkedOutAt,omitempty"`

	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`

	RoomSubtotal   int64 `json:"roomSubtotal"`   // Giá phòng x số đêm
	DiscountAmount int64 `json:"discountAmount"` // Giảm giá voucher (chỉ trên tiền phòng)
	ServiceTotal   int64 `json:"serviceTotal"`   // Tổng tiền dịch vụ kèm theo
	TotalPrice     int64 `json:"totalPrice"`

	Services []BookedService `json:"services" gorm:"foreignKey:BookingID"`
	Invoice  *Invoice        `json:"invoice,omitempty" gorm:"foreignKey:BookingID"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
