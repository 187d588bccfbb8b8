package dto

import (
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"
)

// ActorResponse là DTO cho thông tin khách/người đặt
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type CreateBookingRequest struct {
	CustomerID    uint                        `json:"customerId"`
	RoomID        uint                        `json:"roomId"`
	CheckInDate   string                      `json:"checkInDate"`  // 02/01/2006
	CheckOutDate  string                      `json:"checkOutDate"` // 02/01/2006
	PaymentMethod string                      `json:"paymentMethod"`
	VoucherID     *uint                       `json:"voucherId,omitempty"`
	Services      []services.ServiceSelection `json:"services,omitempty"`
	GuestName     string                      `json:"guestName,omitempty"`
	GuestEmail    string                      `json:"guestEmail,omitempty"`
	GuestPhone    string                      `json:"guestPhone,omitempty"`
}

type CancelBookingRequest struct {
	ID     uint   `json:"id"`
	Reason string `json:"reason,omitempty"`
}

type BookingIDRequest struct {
	ID uint `json:"id"`
}

type BookingStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type BookedServiceResponse struct {
	ServiceID   uint   `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	LineTotal   int64  `json:"lineTotal"`
	Done        bool   `json:"done"`
}

type BookingRoomResponse struct {
	ID       uint   `json:"id"`
	RoomName string `json:"roomName"`
	Price    int64  `json:"price"`
}

type BookingResponse struct {
	ID             uint                    `json:"id"`
	BookingCode    string                  `json:"bookingCode"`
	Customer       ActorResponse           `json:"customer"`
	Room           BookingRoomResponse     `json:"room"`
	CheckInDate    string                  `json:"checkInDate"`
	CheckOutDate   string                  `json:"checkOutDate"`
	Status         string                  `json:"status"`
	CancelReason   string                  `json:"cancelReason,omitempty"`
	RoomSubtotal   int64                   `json:"roomSubtotal"`
	DiscountAmount int64                   `json:"discountAmount"`
	ServiceTotal   int64                   `json:"serviceTotal"`
	TotalPrice     int64                   `json:"totalPrice"`
	Services       []BookedServiceResponse `json:"services,omitempty"`
	InvoiceCode    string                  `json:"invoiceCode,omitempty"`
	InvoiceStatus  string                  `json:"invoiceStatus,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// PaymentRedirectResponse trả về khi thanh toán qua ví: chưa có booking,
// khách được chuyển đến URL thanh toán.
type PaymentRedirectResponse struct {
	PayURL string `json:"payUrl"`
}
