package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/errors"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// RefundCutoffDays: hủy khi còn <= 1 ngày tới ngày nhận phòng thì không hoàn tiền
	RefundCutoffDays = 1

	// CheckInOpeningHour: giờ sớm nhất được nhận phòng trong ngày check-in
	CheckInOpeningHour = 8

	// DefaultCancelReason dùng khi khách không nêu lý do
	DefaultCancelReason = "Khách yêu cầu hủy"
)

// BookingService quản lý vòng đời đặt phòng
type BookingService struct {
	DB      *gorm.DB
	Clock   Clock
	Gateway PaymentGateway
	Logger  logger.Logger
}

type BookingServiceOptions struct {
	DB      *gorm.DB
	Clock   Clock
	Gateway PaymentGateway
	Logger  logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		DB:      opts.DB,
		Clock:   opts.Clock,
		Gateway: opts.Gateway,
		Logger:  opts.Logger,
	}
}

// CreateBookingInput là dữ liệu đã validate từ controller
type CreateBookingInput struct {
	CustomerID    uint
	RoomID        uint
	CheckInDate   time.Time
	CheckOutDate  time.Time
	PaymentMethod string
	VoucherID     *uint
	Services      []ServiceSelection
	GuestName     string
	GuestEmail    string
	GuestPhone    string
}

// CreateBookingResult: thanh toán tiền mặt trả về booking đã lưu,
// thanh toán ví trả về URL thanh toán và chưa lưu gì cả.
type CreateBookingResult struct {
	Booking *models.Booking
	PayURL  string
}

// lockForUpdate khóa dòng phòng trong transaction để chặn hai request
// cùng thấy phòng trống rồi cùng ghi. SQLite (dùng trong test) không hỗ
// trợ FOR UPDATE nhưng tự serialize ghi trong transaction.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// NewBookingCode sinh mã đặt phòng duy nhất, dùng làm orderId thanh toán
// và khóa idempotency cho webhook.
func NewBookingCode() string {
	return fmt.Sprintf("DP%d", time.Now().UnixNano())
}

// Create tạo đặt phòng mới. Kiểm tra phòng trống và ghi booking nằm trong
// cùng một transaction để hai request trùng khoảng ngày không thể cùng thành công.
func (s *BookingService) Create(input CreateBookingInput) (*CreateBookingResult, error) {
	checkIn := DateOnly(input.CheckInDate)
	checkOut := DateOnly(input.CheckOutDate)

	if Nights(checkIn, checkOut) <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	if checkIn.Before(DateOnly(s.Clock.Now())) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không được nhỏ hơn ngày hiện tại", nil)
	}

	var customer models.Customer
	if err := s.DB.First(&customer, input.CustomerID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeCustomerNotFound, "Không tìm thấy khách hàng", err)
	}

	switch input.PaymentMethod {
	case constants.PaymentMethodCash:
		return s.createCashBooking(input, checkIn, checkOut)
	case constants.PaymentMethodMomo:
		return s.createMomoIntent(input, checkIn, checkOut)
	default:
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Phương thức thanh toán không hợp lệ", nil)
	}
}

func (s *BookingService) createCashBooking(input CreateBookingInput, checkIn, checkOut time.Time) (*CreateBookingResult, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, input.RoomID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		if room.Status != constants.RoomStatusAvailable {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng hiện không nhận đặt", nil)
		}

		free, err := IsRoomFree(tx, room.ID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if !free {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng đã được đặt trong khoảng thời gian này", nil)
		}

		quote, lines, err := BuildQuote(tx, s.Clock.Now(), &room, checkIn, checkOut, input.VoucherID, input.Services)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
		}

		booking = models.Booking{
			BookingCode:    NewBookingCode(),
			CustomerID:     input.CustomerID,
			RoomID:         room.ID,
			VoucherID:      input.VoucherID,
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			Status:         constants.BookingStatusPending,
			GuestName:      input.GuestName,
			GuestEmail:     input.GuestEmail,
			GuestPhone:     input.GuestPhone,
			RoomSubtotal:   quote.RoomSubtotal,
			DiscountAmount: quote.DiscountAmount,
			ServiceTotal:   quote.ServiceTotal,
			TotalPrice:     quote.TotalPrice,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].BookingID = booking.ID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}

		invoice := models.Invoice{
			BookingID:     booking.ID,
			Amount:        quote.TotalPrice,
			PaymentMethod: constants.PaymentMethodCash,
			Status:        constants.InvoiceStatusUnpaid,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		booking.Services = lines
		booking.Invoice = &invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookingResult{Booking: &booking}, nil
}

// createMomoIntent không ghi gì vào DB: toàn bộ dữ liệu đặt phòng được
// đóng gói vào extraData, webhook mới là nơi ghi nhận sau khi tiền về.
func (s *BookingService) createMomoIntent(input CreateBookingInput, checkIn, checkOut time.Time) (*CreateBookingResult, error) {
	var room models.Room
	if err := s.DB.First(&room, input.RoomID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
	}
	if room.Status != constants.RoomStatusAvailable {
		return nil, errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng hiện không nhận đặt", nil)
	}

	free, err := IsRoomFree(s.DB, room.ID, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng đã được đặt trong khoảng thời gian này", nil)
	}

	quote, _, err := BuildQuote(s.DB, s.Clock.Now(), &room, checkIn, checkOut, input.VoucherID, input.Services)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	token := BookingToken{
		BookingCode:  NewBookingCode(),
		CustomerID:   input.CustomerID,
		RoomID:       room.ID,
		CheckInDate:  checkIn.Format(DateLayout),
		CheckOutDate: checkOut.Format(DateLayout),
		VoucherID:    input.VoucherID,
		Services:     input.Services,
		GuestName:    input.GuestName,
		GuestEmail:   input.GuestEmail,
		GuestPhone:   input.GuestPhone,
		Quote:        quote,
	}
	extraData, err := EncodeBookingToken(token)
	if err != nil {
		return nil, err
	}

	orderInfo := fmt.Sprintf("Dat phong %s", room.RoomName)
	payURL, err := s.Gateway.CreatePayURL(context.Background(), token.BookingCode, quote.TotalPrice, orderInfo, extraData)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodePaymentGateway, "Không tạo được giao dịch MoMo", err)
	}

	return &CreateBookingResult{PayURL: payURL}, nil
}

// MaterializeMomoBooking ghi nhận booking từ extraData sau khi webhook báo
// thanh toán thành công. Idempotent theo BookingCode: webhook gửi lại lần hai
// trả về booking đã có, không tạo trùng.
func (s *BookingService) MaterializeMomoBooking(token BookingToken) (*models.Booking, bool, error) {
	checkIn, err := time.ParseInLocation(DateLayout, token.CheckInDate, time.Local)
	if err != nil {
		return nil, false, errors.NewAppError(errors.ErrCodeInvalidToken64, "ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := time.ParseInLocation(DateLayout, token.CheckOutDate, time.Local)
	if err != nil {
		return nil, false, errors.NewAppError(errors.ErrCodeInvalidToken64, "ngày trả phòng không hợp lệ", err)
	}

	var booking models.Booking
	created := false

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Booking
		if err := tx.Where("booking_code = ?", token.BookingCode).First(&existing).Error; err == nil {
			booking = existing
			return nil
		} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var room models.Room
		if err := lockForUpdate(tx).First(&room, token.RoomID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}

		free, err := IsRoomFree(tx, room.ID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if !free {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable,
				"Phòng đã bị đặt trước khi thanh toán hoàn tất", nil)
		}

		booking = models.Booking{
			BookingCode:    token.BookingCode,
			CustomerID:     token.CustomerID,
			RoomID:         room.ID,
			VoucherID:      token.VoucherID,
			CheckInDate:    DateOnly(checkIn),
			CheckOutDate:   DateOnly(checkOut),
			Status:         constants.BookingStatusPending,
			GuestName:      token.GuestName,
			GuestEmail:     token.GuestEmail,
			GuestPhone:     token.GuestPhone,
			RoomSubtotal:   token.Quote.RoomSubtotal,
			DiscountAmount: token.Quote.DiscountAmount,
			ServiceTotal:   token.Quote.ServiceTotal,
			TotalPrice:     token.Quote.TotalPrice,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		for _, sel := range token.Services {
			if sel.Quantity <= 0 {
				continue
			}
			var service models.Service
			if err := tx.First(&service, sel.ServiceID).Error; err != nil {
				return err
			}
			line := models.BookedService{
				BookingID:   booking.ID,
				ServiceID:   service.ID,
				ServiceName: service.Name,
				UnitPrice:   service.Price,
				Quantity:    sel.Quantity,
				LineTotal:   service.Price * int64(sel.Quantity),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		now := s.Clock.Now()
		invoice := models.Invoice{
			BookingID:     booking.ID,
			Amount:        token.Quote.TotalPrice,
			PaymentMethod: constants.PaymentMethodMomo,
			Status:        constants.InvoiceStatusPaid,
			PaymentDate:   &now,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		room.Status = constants.RoomStatusReserved
		if err := tx.Save(&room).Error; err != nil {
			return err
		}

		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &booking, created, nil
}

func (s *BookingService) getBooking(db *gorm.DB, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := db.First(&booking, bookingID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy đặt phòng", err)
	}
	return &booking, nil
}

// RequestCancel: khách yêu cầu hủy, chỉ cho phép từ trạng thái chờ xác nhận
func (s *BookingService) RequestCancel(bookingID uint, reason string) (*models.Booking, error) {
	booking, err := s.getBooking(s.DB, bookingID)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		reason = DefaultCancelReason
	}

	state := models.GetBookingState(booking.Status)
	if err := state.RequestCancel(booking, reason); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), nil)
	}

	if err := s.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// FinalizeCancel: quản trị viên chốt hủy từ bất kỳ trạng thái nào.
// Hóa đơn đã thanh toán được xét cửa sổ hoàn tiền; dòng dịch vụ chỉ bị xóa
// khi chưa có hóa đơn hoặc hóa đơn chưa thanh toán. Tất cả trong một transaction.
func (s *BookingService) FinalizeCancel(bookingID uint) (*models.Booking, error) {
	var booking *models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = s.getBooking(tx, bookingID)
		if err != nil {
			return err
		}

		// Đã hủy rồi thì không làm gì nữa, tránh chốt hủy lặp xóa dữ liệu
		if booking.Status == constants.BookingStatusCancelled {
			return nil
		}

		var invoice models.Invoice
		hasInvoice := tx.Where("booking_id = ?", booking.ID).First(&invoice).Error == nil

		switch {
		case hasInvoice && invoice.Status == constants.InvoiceStatusPaid:
			// diffDays <= 1: hủy sát ngày nhận phòng, mất tiền
			diffDays := int(DateOnly(booking.CheckInDate).Sub(DateOnly(s.Clock.Now())).Hours() / 24)
			if diffDays <= RefundCutoffDays {
				invoice.Status = constants.InvoiceStatusRefundedNone
			} else {
				invoice.Status = constants.InvoiceStatusRefundedFull
			}
			if err := tx.Save(&invoice).Error; err != nil {
				return err
			}
		case !hasInvoice || invoice.Status == constants.InvoiceStatusUnpaid:
			if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.BookedService{}).Error; err != nil {
				return err
			}
		}

		booking.Status = constants.BookingStatusCancelled
		if booking.CancelReason == "" {
			booking.CancelReason = DefaultCancelReason
		}
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		// Trả phòng về trạng thái trống nếu thanh toán ví đã giữ phòng
		var room models.Room
		if err := tx.First(&room, booking.RoomID).Error; err == nil && room.Status == constants.RoomStatusReserved {
			room.Status = constants.RoomStatusAvailable
			if err := tx.Save(&room).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// RevertCancel khôi phục đặt phòng từ yêu cầu hủy về chờ xác nhận
func (s *BookingService) RevertCancel(bookingID uint) (*models.Booking, error) {
	booking, err := s.getBooking(s.DB, bookingID)
	if err != nil {
		return nil, err
	}

	state := models.GetBookingState(booking.Status)
	if err := state.RevertCancel(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), nil)
	}

	if err := s.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// CheckIn nhận phòng: chỉ từ 08:00 ngày nhận phòng và hóa đơn đã thanh toán
func (s *BookingService) CheckIn(bookingID uint) (*models.Booking, error) {
	booking, err := s.getBooking(s.DB, bookingID)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	opening := DateOnly(booking.CheckInDate).Add(CheckInOpeningHour * time.Hour)
	if now.Before(opening) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition,
			fmt.Sprintf("Chỉ được nhận phòng từ %02d:00 ngày nhận phòng", CheckInOpeningHour), nil)
	}

	var invoice models.Invoice
	if err := s.DB.Where("booking_id = ?", booking.ID).First(&invoice).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Đặt phòng chưa có hóa đơn", err)
	}
	if invoice.Status != constants.InvoiceStatusPaid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Hóa đơn chưa được thanh toán, không thể nhận phòng", nil)
	}

	state := models.GetBookingState(booking.Status)
	if err := state.CheckIn(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), nil)
	}

	if err := s.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// CheckOut trả phòng rồi tính lại hạng thành viên cho khách.
// Tính lại hạng là side effect best-effort: lỗi chỉ được log,
// không làm hỏng việc trả phòng đã ghi.
func (s *BookingService) CheckOut(bookingID uint) (*models.Booking, error) {
	booking, err := s.getBooking(s.DB, bookingID)
	if err != nil {
		return nil, err
	}

	state := models.GetBookingState(booking.Status)
	if err := state.CheckOut(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, err.Error(), nil)
	}

	now := s.Clock.Now()
	booking.CheckedOutAt = &now

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		var room models.Room
		if err := tx.First(&room, booking.RoomID).Error; err == nil && room.Status == constants.RoomStatusReserved {
			room.Status = constants.RoomStatusAvailable
			if err := tx.Save(&room).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := RecomputeTier(s.DB, booking.CustomerID); err != nil {
		s.Logger.Error("Không thể tính lại hạng thành viên cho khách %d: %v", booking.CustomerID, err)
	}

	return booking, nil
}

// SetStatus ghi trạng thái theo yêu cầu admin. Nhận phòng và trả phòng đi
// qua nghiệp vụ riêng; các giá trị còn lại được ghi thẳng.
func (s *BookingService) SetStatus(bookingID uint, status string) (*models.Booking, error) {
	switch status {
	case constants.BookingStatusCheckedIn:
		return s.CheckIn(bookingID)
	case constants.BookingStatusCheckedOut:
		return s.CheckOut(bookingID)
	case constants.BookingStatusCancelled:
		return s.FinalizeCancel(bookingID)
	default:
		booking, err := s.getBooking(s.DB, bookingID)
		if err != nil {
			return nil, err
		}
		booking.Status = status
		if err := s.DB.Save(booking).Error; err != nil {
			return nil, err
		}
		return booking, nil
	}
}
