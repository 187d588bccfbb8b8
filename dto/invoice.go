package dto

// InvoiceResponse là DTO cho response của hóa đơn
type InvoiceResponse struct {
	ID            uint          `json:"id"`
	InvoiceCode   string        `json:"invoiceCode"`
	BookingID     uint          `json:"bookingId"`
	BookingCode   string        `json:"bookingCode"`
	Amount        int64         `json:"amount"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        string        `json:"status"`
	PaymentDate   *string       `json:"paymentDate,omitempty"`
	Customer      ActorResponse `json:"customer"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
}

// UpdatePaymentStatusRequest: admin chỉnh trạng thái thanh toán thủ công
type UpdatePaymentStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}
