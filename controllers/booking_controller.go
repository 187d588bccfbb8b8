package controllers

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/dto"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/response"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/validator"

	"github.com/gin-gonic/gin"
)

// Chuyển chuỗi ngày string thành dạng timestamp theo múi giờ hệ thống,
// cùng múi giờ với Clock.Now() để các mốc theo ngày không bị lệch
func ConvertDateToISOFormat(dateStr string) (time.Time, error) {
	parsedDate, err := time.ParseInLocation(services.DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return parsedDate, nil
}

func convertToBookingRoomResponse(room models.Room) dto.BookingRoomResponse {
	return dto.BookingRoomResponse{
		ID:       room.ID,
		RoomName: room.RoomName,
		Price:    room.Price,
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
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

	var serviceResponses []dto.BookedServiceResponse
	for _, line := range booking.Services {
		serviceResponses = append(serviceResponses, dto.BookedServiceResponse{
			ServiceID:   line.ServiceID,
			ServiceName: line.ServiceName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
			Done:        line.Done,
		})
	}

	resp := dto.BookingResponse{
		ID:             booking.ID,
		BookingCode:    booking.BookingCode,
		Customer:       actor,
		Room:           convertToBookingRoomResponse(booking.Room),
		CheckInDate:    booking.CheckInDate.Format(services.DateLayout),
		CheckOutDate:   booking.CheckOutDate.Format(services.DateLayout),
		Status:         booking.Status,
		CancelReason:   booking.CancelReason,
		RoomSubtotal:   booking.RoomSubtotal,
		DiscountAmount: booking.DiscountAmount,
		ServiceTotal:   booking.ServiceTotal,
		TotalPrice:     booking.TotalPrice,
		Services:       serviceResponses,
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
	}
	if booking.Invoice != nil {
		resp.InvoiceCode = booking.Invoice.InvoiceCode
		resp.InvoiceStatus = booking.Invoice.Status
	}
	return resp
}

func GetBookings(c *gin.Context) {
	cacheKey := "bookings:all"
	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var allBookings []models.Booking

	// Lấy dữ liệu từ Redis Cache
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &allBookings); err != nil || len(allBookings) == 0 {
		baseTx := config.DB.Model(&models.Booking{}).
			Preload("Customer").
			Preload("Room").
			Preload("Services").
			Preload("Invoice")

		if err := baseTx.Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allBookings, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách đặt phòng vào Redis: %v", err)
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	phoneStr := c.Query("phoneNumber")
	statusFilter := c.Query("status")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")
	roomIDStr := c.Query("roomId")

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

	filteredBookings := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if phoneStr != "" {
			phone := booking.Customer.PhoneNumber
			if phone == "" {
				phone = booking.GuestPhone
			}
			if !strings.Contains(strings.ToLower(phone), strings.ToLower(phoneStr)) {
				continue
			}
		}
		if statusFilter != "" && booking.Status != statusFilter {
			continue
		}
		if roomIDStr != "" {
			roomID, err := strconv.Atoi(roomIDStr)
			if err == nil && booking.RoomID != uint(roomID) {
				continue
			}
		}
		if fromDateStr != "" {
			fromDateISO, err := ConvertDateToISOFormat(fromDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng fromDate")
				return
			}
			if booking.CheckInDate.Before(fromDateISO) {
				continue
			}
		}
		if toDateStr != "" {
			toDateISO, err := ConvertDateToISOFormat(toDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng toDate")
				return
			}
			if booking.CheckInDate.After(toDateISO) {
				continue
			}
		}
		filteredBookings = append(filteredBookings, booking)
	}

	totalFiltered := len(filteredBookings)

	//Xếp theo update mới nhất
	sort.Slice(filteredBookings, func(i, j int) bool {
		return filteredBookings[i].UpdatedAt.After(filteredBookings[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredBookings = []models.Booking{}
	} else if end > totalFiltered {
		filteredBookings = filteredBookings[start:]
	} else {
		filteredBookings = filteredBookings[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filteredBookings))
	for _, booking := range filteredBookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, totalFiltered)
}

func GetBookingDetail(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.
		Preload("Customer").
		Preload("Room").
		Preload("Services").
		Preload("Invoice").
		First(&booking, bookingID).Error; err != nil {
		response.NotFoundEntity(c, "đặt phòng")
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// GetBookingHistory trả về lịch sử đặt phòng của một khách hàng
func GetBookingHistory(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		response.BadRequest(c, "ID khách hàng không hợp lệ")
		return
	}

	var bookings []models.Booking
	if err := config.DB.
		Preload("Customer").
		Preload("Room").
		Preload("Services").
		Preload("Invoice").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.Success(c, bookingResponses)
}

func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCreateBooking(&request); err != nil {
		respondAppError(c, err)
		return
	}

	checkInDate, err := ConvertDateToISOFormat(request.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
		return
	}
	checkOutDate, err := ConvertDateToISOFormat(request.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ")
		return
	}

	result, err := bookingService.Create(services.CreateBookingInput{
		CustomerID:    request.CustomerID,
		RoomID:        request.RoomID,
		CheckInDate:   checkInDate,
		CheckOutDate:  checkOutDate,
		PaymentMethod: request.PaymentMethod,
		VoucherID:     request.VoucherID,
		Services:      request.Services,
		GuestName:     request.GuestName,
		GuestEmail:    request.GuestEmail,
		GuestPhone:    request.GuestPhone,
	})
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCache()

	// Thanh toán ví: chưa có booking, trả về URL để khách thanh toán
	if result.PayURL != "" {
		response.Success(c, dto.PaymentRedirectResponse{PayURL: result.PayURL})
		return
	}

	var booking models.Booking
	if err := config.DB.
		Preload("Customer").
		Preload("Room").
		Preload("Services").
		Preload("Invoice").
		First(&booking, result.Booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// CancelBooking: khách gửi yêu cầu hủy, chờ quản trị viên duyệt
func CancelBooking(c *gin.Context) {
	var request dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := bookingService.RequestCancel(request.ID, request.Reason)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCache()
	response.Success(c, gin.H{"id": booking.ID, "status": booking.Status})
}

// ConfirmCancelBooking: quản trị viên chốt hủy, xét cửa sổ hoàn tiền
func ConfirmCancelBooking(c *gin.Context) {
	var request dto.BookingIDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := bookingService.FinalizeCancel(request.ID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCache()
	response.Success(c, gin.H{"id": booking.ID, "status": booking.Status})
}

// RevertCancelBooking khôi phục đặt phòng đang yêu cầu hủy
func RevertCancelBooking(c *gin.Context) {
	var request dto.BookingIDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := bookingService.RevertCancel(request.ID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCache()
	response.Success(c, gin.H{"id": booking.ID, "status": booking.Status})
}

// ChangeBookingStatus đổi trạng thái đặt phòng theo yêu cầu quản trị viên
func ChangeBookingStatus(c *gin.Context) {
	var request dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := bookingService.SetStatus(request.ID, request.Status)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateBookingCache()
	response.Success(c, gin.H{"id": booking.ID, "status": booking.Status})
}

func invalidateBookingCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, "bookings:*"); err != nil {
		log.Printf("Lỗi khi xóa cache đặt phòng: %v", err)
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, "rooms:all"); err != nil {
		fmt.Println("Lỗi khi xóa cache phòng:", err)
	}
}
