package controllers

import (
	"strconv"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/dto"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/response"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"

	"github.com/gin-gonic/gin"
)

func convertToInvoiceResponse(invoice models.Invoice, booking models.Booking) dto.InvoiceResponse {
	var actor dto.ActorResponse
	if booking.Customer.ID != 0 {
		actor = dto.ActorResponse{
			Name:        booking.Customer.Name,
			Email:       booking.Customer.Email,
			PhoneNumber: booking.Customer.PhoneNumber,
		}
	} else {
		actor = dto.ActorResponse{
			Name:        booking.GuestName,
			Email:       booking.GuestEmail,
			PhoneNumber: booking.GuestPhone,
		}
	}

	resp := dto.InvoiceResponse{
		ID:            invoice.ID,
		InvoiceCode:   invoice.InvoiceCode,
		BookingID:     invoice.BookingID,
		BookingCode:   booking.BookingCode,
		Amount:        invoice.Amount,
		PaymentMethod: invoice.PaymentMethod,
		Status:        invoice.Status,
		Customer:      actor,
		CreatedAt:     invoice.CreatedAt.Format(services.DateLayout),
		UpdatedAt:     invoice.UpdatedAt.Format(services.DateLayout),
	}
	if invoice.PaymentDate != nil {
		formatted := invoice.PaymentDate.Format(services.DateLayout)
		resp.PaymentDate = &formatted
	}
	return resp
}

func GetInvoices(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	methodFilter := c.Query("paymentMethod")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	query := config.DB.Model(&models.Invoice{})
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}
	if methodFilter != "" {
		query = query.Where("payment_method = ?", methodFilter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var invoices []models.Invoice
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&invoices).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingIDs := make([]uint, 0, len(invoices))
	for _, invoice := range invoices {
		bookingIDs = append(bookingIDs, invoice.BookingID)
	}
	bookings := make(map[uint]models.Booking)
	if len(bookingIDs) > 0 {
		var rows []models.Booking
		if err := config.DB.Preload("Customer").Where("id IN ?", bookingIDs).Find(&rows).Error; err != nil {
			response.ServerError(c)
			return
		}
		for _, booking := range rows {
			bookings[booking.ID] = booking
		}
	}

	invoiceResponses := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		invoiceResponses = append(invoiceResponses, convertToInvoiceResponse(invoice, bookings[invoice.BookingID]))
	}

	response.SuccessWithPagination(c, invoiceResponses, page, limit, int(total))
}

func GetInvoiceDetail(c *gin.Context) {
	invoiceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID hóa đơn không hợp lệ")
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, invoiceID).Error; err != nil {
		response.NotFoundEntity(c, "hóa đơn")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Customer").First(&booking, invoice.BookingID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToInvoiceResponse(invoice, booking))
}

// UpdatePaymentStatus: lễ tân xác nhận thanh toán tiền mặt tại quầy
func UpdatePaymentStatus(c *gin.Context) {
	var request dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	switch request.Status {
	case constants.InvoiceStatusUnpaid, constants.InvoiceStatusPaid,
		constants.InvoiceStatusRefundedNone, constants.InvoiceStatusRefundedFull:
	default:
		response.BadRequest(c, "Trạng thái hóa đơn không hợp lệ")
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, request.ID).Error; err != nil {
		response.NotFoundEntity(c, "hóa đơn")
		return
	}

	invoice.Status = request.Status
	if request.Status == constants.InvoiceStatusPaid && invoice.PaymentDate == nil {
		now := bookingService.Clock.Now()
		invoice.PaymentDate = &now
	}

	if err := config.DB.Save(&invoice).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCache()
	response.Success(c, gin.H{"id": invoice.ID, "status": invoice.Status})
}
