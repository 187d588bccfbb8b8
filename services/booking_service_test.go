package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/errors"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestBookingService(t *testing.T, db *gorm.DB, now string) (*BookingService, *fixedClock, *fakeGateway) {
	t.Helper()
	clock := &fixedClock{now: mustDate(t, now)}
	gateway := &fakeGateway{}
	svc := NewBookingService(BookingServiceOptions{
		DB:      db,
		Clock:   clock,
		Gateway: gateway,
	})
	return svc, clock, gateway
}

func requireAppErrCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr, "muốn AppError, nhận %v", err)
	require.Equal(t, code, appErr.Code)
}

func TestCreateCashBooking(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, _ := newTestBookingService(t, db, "01/09/2026")

	spa := models.Service{Name: "Spa", Price: 300000, Status: 1}
	require.NoError(t, db.Create(&spa).Error)

	result, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodCash,
		Services:      []ServiceSelection{{ServiceID: spa.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Booking)
	require.Empty(t, result.PayURL)

	booking := result.Booking
	require.Equal(t, constants.BookingStatusPending, booking.Status)
	require.Equal(t, int64(1500000), booking.RoomSubtotal)
	require.Equal(t, int64(1800000), booking.TotalPrice)
	require.NotEmpty(t, booking.BookingCode)

	// Hóa đơn tiền mặt sinh ra ở trạng thái chưa thanh toán
	var invoice models.Invoice
	require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&invoice).Error)
	require.Equal(t, constants.InvoiceStatusUnpaid, invoice.Status)
	require.Equal(t, constants.PaymentMethodCash, invoice.PaymentMethod)
	require.Equal(t, booking.TotalPrice, invoice.Amount)
	require.NotEmpty(t, invoice.InvoiceCode)

	// Đặt tiền mặt không giữ phòng: trạng thái phòng giữ nguyên
	var freshRoom models.Room
	require.NoError(t, db.First(&freshRoom, room.ID).Error)
	require.Equal(t, constants.RoomStatusAvailable, freshRoom.Status)
}

func TestCreateBookingValidation(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, _ := newTestBookingService(t, db, "01/09/2026")

	base := CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodCash,
	}

	t.Run("không đêm nào", func(t *testing.T) {
		input := base
		input.CheckOutDate = input.CheckInDate
		_, err := svc.Create(input)
		requireAppErrCode(t, err, errors.ErrCodeInvalidDate)
	})

	t.Run("ngày nhận phòng trong quá khứ", func(t *testing.T) {
		input := base
		input.CheckInDate = mustDate(t, "30/08/2026")
		input.CheckOutDate = mustDate(t, "31/08/2026")
		_, err := svc.Create(input)
		requireAppErrCode(t, err, errors.ErrCodeInvalidDate)
	})

	t.Run("khách hàng không tồn tại", func(t *testing.T) {
		input := base
		input.CustomerID = 9999
		_, err := svc.Create(input)
		requireAppErrCode(t, err, errors.ErrCodeCustomerNotFound)
	})

	t.Run("phương thức thanh toán không hợp lệ", func(t *testing.T) {
		input := base
		input.PaymentMethod = "Bitcoin"
		_, err := svc.Create(input)
		requireAppErrCode(t, err, errors.ErrCodeValidation)
	})

	t.Run("phòng đang sửa chữa", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("status", constants.RoomStatusRepair).Error)
		_, err := svc.Create(base)
		requireAppErrCode(t, err, errors.ErrCodeRoomUnavailable)
		require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("status", constants.RoomStatusAvailable).Error)
	})

	t.Run("khoảng ngày đã có khách", func(t *testing.T) {
		_, err := svc.Create(base)
		require.NoError(t, err)

		input := base
		input.CheckInDate = mustDate(t, "12/09/2026")
		input.CheckOutDate = mustDate(t, "14/09/2026")
		_, err = svc.Create(input)
		requireAppErrCode(t, err, errors.ErrCodeRoomUnavailable)
	})
}

func TestCreateMomoIntentWritesNothing(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, gateway := newTestBookingService(t, db, "01/09/2026")

	result, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodMomo,
	})
	require.NoError(t, err)
	require.Nil(t, result.Booking)
	require.Contains(t, result.PayURL, gateway.lastBookingCode)
	require.Equal(t, int64(1500000), gateway.lastAmount)

	// Chưa có gì được ghi cho đến khi webhook báo tiền về
	var bookingCount, invoiceCount int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookingCount).Error)
	require.NoError(t, db.Model(&models.Invoice{}).Count(&invoiceCount).Error)
	require.Zero(t, bookingCount)
	require.Zero(t, invoiceCount)

	// extraData giải mã lại được đúng đơn đặt phòng
	token, err := DecodeBookingToken(gateway.lastExtraData)
	require.NoError(t, err)
	require.Equal(t, gateway.lastBookingCode, token.BookingCode)
	require.Equal(t, customer.ID, token.CustomerID)
	require.Equal(t, int64(1500000), token.Quote.TotalPrice)
}

func TestMaterializeMomoBooking(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, gateway := newTestBookingService(t, db, "01/09/2026")

	_, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodMomo,
	})
	require.NoError(t, err)

	token, err := DecodeBookingToken(gateway.lastExtraData)
	require.NoError(t, err)

	booking, created, err := svc.MaterializeMomoBooking(token)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, token.BookingCode, booking.BookingCode)
	require.Equal(t, constants.BookingStatusPending, booking.Status)

	// Hóa đơn sinh ra ở trạng thái đã thanh toán, phòng được giữ
	var invoice models.Invoice
	require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&invoice).Error)
	require.Equal(t, constants.InvoiceStatusPaid, invoice.Status)
	require.Equal(t, constants.PaymentMethodMomo, invoice.PaymentMethod)
	require.NotNil(t, invoice.PaymentDate)

	var freshRoom models.Room
	require.NoError(t, db.First(&freshRoom, room.ID).Error)
	require.Equal(t, constants.RoomStatusReserved, freshRoom.Status)

	// Webhook gửi lại lần hai: trả về booking cũ, không tạo trùng
	again, created, err := svc.MaterializeMomoBooking(token)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, booking.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestMaterializeMomoBookingRoomTaken(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, gateway := newTestBookingService(t, db, "01/09/2026")

	_, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodMomo,
	})
	require.NoError(t, err)

	token, err := DecodeBookingToken(gateway.lastExtraData)
	require.NoError(t, err)

	// Trong lúc khách thanh toán, phòng bị đặt bởi người khác
	seedBooking(t, db, room.ID, customer.ID, "11/09/2026", "12/09/2026", constants.BookingStatusPending)

	_, _, err = svc.MaterializeMomoBooking(token)
	requireAppErrCode(t, err, errors.ErrCodeRoomUnavailable)
}

func TestCancelFlow(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, _ := newTestBookingService(t, db, "01/09/2026")

	newCashBooking := func(t *testing.T, checkIn, checkOut string) *models.Booking {
		result, err := svc.Create(CreateBookingInput{
			CustomerID:    customer.ID,
			RoomID:        room.ID,
			CheckInDate:   mustDate(t, checkIn),
			CheckOutDate:  mustDate(t, checkOut),
			PaymentMethod: constants.PaymentMethodCash,
		})
		require.NoError(t, err)
		return result.Booking
	}

	t.Run("yêu cầu hủy rồi khôi phục", func(t *testing.T) {
		booking := newCashBooking(t, "10/09/2026", "13/09/2026")

		updated, err := svc.RequestCancel(booking.ID, "Đổi lịch công tác")
		require.NoError(t, err)
		require.Equal(t, constants.BookingStatusCancelRequested, updated.Status)
		require.Equal(t, "Đổi lịch công tác", updated.CancelReason)

		restored, err := svc.RevertCancel(booking.ID)
		require.NoError(t, err)
		require.Equal(t, constants.BookingStatusPending, restored.Status)
	})

	t.Run("chỉ trạng thái chờ xác nhận mới yêu cầu hủy được", func(t *testing.T) {
		booking := newCashBooking(t, "20/09/2026", "22/09/2026")
		require.NoError(t, db.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("status", constants.BookingStatusCheckedIn).Error)

		_, err := svc.RequestCancel(booking.ID, "")
		requireAppErrCode(t, err, errors.ErrCodeInvalidTransition)
	})

	t.Run("chốt hủy booking chưa thanh toán xóa dòng dịch vụ", func(t *testing.T) {
		spa := models.Service{Name: "Spa hủy", Price: 300000, Status: 1}
		require.NoError(t, db.Create(&spa).Error)

		result, err := svc.Create(CreateBookingInput{
			CustomerID:    customer.ID,
			RoomID:        room.ID,
			CheckInDate:   mustDate(t, "25/09/2026"),
			CheckOutDate:  mustDate(t, "27/09/2026"),
			PaymentMethod: constants.PaymentMethodCash,
			Services:      []ServiceSelection{{ServiceID: spa.ID, Quantity: 2}},
		})
		require.NoError(t, err)

		cancelled, err := svc.FinalizeCancel(result.Booking.ID)
		require.NoError(t, err)
		require.Equal(t, constants.BookingStatusCancelled, cancelled.Status)
		require.NotEmpty(t, cancelled.CancelReason)

		var lineCount int64
		require.NoError(t, db.Model(&models.BookedService{}).
			Where("booking_id = ?", result.Booking.ID).Count(&lineCount).Error)
		require.Zero(t, lineCount)
	})
}

func TestRefundWindow(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)

	setup := func(t *testing.T, now, checkIn, checkOut string) (*BookingService, *models.Booking) {
		svc, _, _ := newTestBookingService(t, db, now)
		result, err := svc.Create(CreateBookingInput{
			CustomerID:    customer.ID,
			RoomID:        room.ID,
			CheckInDate:   mustDate(t, checkIn),
			CheckOutDate:  mustDate(t, checkOut),
			PaymentMethod: constants.PaymentMethodCash,
		})
		require.NoError(t, err)

		require.NoError(t, db.Model(&models.Invoice{}).
			Where("booking_id = ?", result.Booking.ID).
			Update("status", constants.InvoiceStatusPaid).Error)
		return svc, result.Booking
	}

	invoiceStatus := func(t *testing.T, bookingID uint) string {
		var invoice models.Invoice
		require.NoError(t, db.Where("booking_id = ?", bookingID).First(&invoice).Error)
		return invoice.Status
	}

	t.Run("hủy sát ngày nhận phòng mất tiền", func(t *testing.T) {
		// Còn đúng 1 ngày tới check-in
		svc, booking := setup(t, "09/09/2026", "10/09/2026", "12/09/2026")
		_, err := svc.FinalizeCancel(booking.ID)
		require.NoError(t, err)
		require.Equal(t, constants.InvoiceStatusRefundedNone, invoiceStatus(t, booking.ID))
	})

	t.Run("hủy sớm được hoàn tiền", func(t *testing.T) {
		// Còn 5 ngày tới check-in
		svc, booking := setup(t, "15/09/2026", "20/09/2026", "22/09/2026")
		_, err := svc.FinalizeCancel(booking.ID)
		require.NoError(t, err)
		require.Equal(t, constants.InvoiceStatusRefundedFull, invoiceStatus(t, booking.ID))
	})

	t.Run("hủy đúng ngày nhận phòng mất tiền", func(t *testing.T) {
		svc, booking := setup(t, "25/09/2026", "25/09/2026", "27/09/2026")
		_, err := svc.FinalizeCancel(booking.ID)
		require.NoError(t, err)
		require.Equal(t, constants.InvoiceStatusRefundedNone, invoiceStatus(t, booking.ID))
	})
}

func TestCheckInGate(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, clock, _ := newTestBookingService(t, db, "01/09/2026")

	result, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)
	booking := result.Booking

	t.Run("chưa thanh toán không được nhận phòng", func(t *testing.T) {
		clock.now = mustDate(t, "10/09/2026").Add(9 * time.Hour)
		_, err := svc.CheckIn(booking.ID)
		requireAppErrCode(t, err, errors.ErrCodeInvalidTransition)
	})

	require.NoError(t, db.Model(&models.Invoice{}).
		Where("booking_id = ?", booking.ID).
		Update("status", constants.InvoiceStatusPaid).Error)

	t.Run("trước 8h sáng ngày nhận phòng bị chặn", func(t *testing.T) {
		clock.now = mustDate(t, "10/09/2026").Add(7 * time.Hour)
		_, err := svc.CheckIn(booking.ID)
		requireAppErrCode(t, err, errors.ErrCodeInvalidTransition)
	})

	t.Run("hôm trước bị chặn", func(t *testing.T) {
		clock.now = mustDate(t, "09/09/2026").Add(15 * time.Hour)
		_, err := svc.CheckIn(booking.ID)
		requireAppErrCode(t, err, errors.ErrCodeInvalidTransition)
	})

	t.Run("từ 8h được nhận phòng", func(t *testing.T) {
		clock.now = mustDate(t, "10/09/2026").Add(8 * time.Hour)
		updated, err := svc.CheckIn(booking.ID)
		require.NoError(t, err)
		require.Equal(t, constants.BookingStatusCheckedIn, updated.Status)
	})

	t.Run("nhận phòng hai lần là lỗi", func(t *testing.T) {
		clock.now = mustDate(t, "10/09/2026").Add(9 * time.Hour)
		_, err := svc.CheckIn(booking.ID)
		requireAppErrCode(t, err, errors.ErrCodeInvalidTransition)
	})
}

func TestCheckOutRecomputesTier(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, clock, _ := newTestBookingService(t, db, "01/09/2026")

	bronze := models.Membership{Name: "Đồng", MinSpend: 0}
	silver := models.Membership{Name: "Bạc", MinSpend: 1000000}
	require.NoError(t, db.Create(&bronze).Error)
	require.NoError(t, db.Create(&silver).Error)

	result, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)
	booking := result.Booking

	require.NoError(t, db.Model(&models.Invoice{}).
		Where("booking_id = ?", booking.ID).
		Update("status", constants.InvoiceStatusPaid).Error)

	clock.now = mustDate(t, "10/09/2026").Add(10 * time.Hour)
	_, err = svc.CheckIn(booking.ID)
	require.NoError(t, err)

	clock.now = mustDate(t, "13/09/2026").Add(11 * time.Hour)
	updated, err := svc.CheckOut(booking.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BookingStatusCheckedOut, updated.Status)
	require.NotNil(t, updated.CheckedOutAt)

	// Chi tiêu 1.5tr vượt ngưỡng hạng Bạc
	var freshCustomer models.Customer
	require.NoError(t, db.First(&freshCustomer, customer.ID).Error)
	require.NotNil(t, freshCustomer.MembershipID)
	require.Equal(t, silver.ID, *freshCustomer.MembershipID)
}

func TestSetStatusDispatch(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, clock, _ := newTestBookingService(t, db, "01/09/2026")

	result, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)
	booking := result.Booking

	// Nhận phòng qua SetStatus vẫn phải qua cổng kiểm tra giờ và hóa đơn
	clock.now = mustDate(t, "10/09/2026").Add(10 * time.Hour)
	_, err = svc.SetStatus(booking.ID, constants.BookingStatusCheckedIn)
	requireAppErrCode(t, err, errors.ErrCodeInvalidTransition)

	require.NoError(t, db.Model(&models.Invoice{}).
		Where("booking_id = ?", booking.ID).
		Update("status", constants.InvoiceStatusPaid).Error)

	updated, err := svc.SetStatus(booking.ID, constants.BookingStatusCheckedIn)
	require.NoError(t, err)
	require.Equal(t, constants.BookingStatusCheckedIn, updated.Status)

	updated, err = svc.SetStatus(booking.ID, constants.BookingStatusCheckedOut)
	require.NoError(t, err)
	require.Equal(t, constants.BookingStatusCheckedOut, updated.Status)
}

func TestSetStatusWriteThrough(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, _ := newTestBookingService(t, db, "01/09/2026")

	result, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	// Trạng thái không có nghiệp vụ riêng được ghi thẳng
	updated, err := svc.SetStatus(result.Booking.ID, constants.BookingStatusCancelRequested)
	require.NoError(t, err)
	require.Equal(t, constants.BookingStatusCancelRequested, updated.Status)

	var fresh models.Booking
	require.NoError(t, db.First(&fresh, result.Booking.ID).Error)
	require.Equal(t, constants.BookingStatusCancelRequested, fresh.Status)
}

func TestCreateMomoGatewayFailure(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, gateway := newTestBookingService(t, db, "01/09/2026")
	gateway.err = fmt.Errorf("momo timeout")

	_, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodMomo,
	})
	requireAppErrCode(t, err, errors.ErrCodePaymentGateway)

	// Cổng thanh toán lỗi thì không được ghi gì xuống DB
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestFinalizeCancelReleasesReservedRoom(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, gateway := newTestBookingService(t, db, "01/09/2026")

	_, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodMomo,
	})
	require.NoError(t, err)

	token, err := DecodeBookingToken(gateway.lastExtraData)
	require.NoError(t, err)
	booking, _, err := svc.MaterializeMomoBooking(token)
	require.NoError(t, err)

	var reserved models.Room
	require.NoError(t, db.First(&reserved, room.ID).Error)
	require.Equal(t, constants.RoomStatusReserved, reserved.Status)

	cancelled, err := svc.FinalizeCancel(booking.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BookingStatusCancelled, cancelled.Status)

	// Phòng ví đã giữ phải được trả về trống, tiền hoàn đủ vì còn xa ngày nhận
	var released models.Room
	require.NoError(t, db.First(&released, room.ID).Error)
	require.Equal(t, constants.RoomStatusAvailable, released.Status)

	var invoice models.Invoice
	require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&invoice).Error)
	require.Equal(t, constants.InvoiceStatusRefundedFull, invoice.Status)
}

func TestFinalizeCancelRepeatKeepsServiceLines(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)
	svc, _, _ := newTestBookingService(t, db, "01/09/2026")

	spa := models.Service{Name: "Spa", Price: 300000, Status: 1}
	require.NoError(t, db.Create(&spa).Error)

	result, err := svc.Create(CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckInDate:   mustDate(t, "10/09/2026"),
		CheckOutDate:  mustDate(t, "13/09/2026"),
		PaymentMethod: constants.PaymentMethodCash,
		Services:      []ServiceSelection{{ServiceID: spa.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	booking := result.Booking

	require.NoError(t, db.Model(&models.Invoice{}).
		Where("booking_id = ?", booking.ID).
		Update("status", constants.InvoiceStatusPaid).Error)

	cancelled, err := svc.FinalizeCancel(booking.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BookingStatusCancelled, cancelled.Status)

	var invoice models.Invoice
	require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&invoice).Error)
	require.Equal(t, constants.InvoiceStatusRefundedFull, invoice.Status)

	// Chốt hủy lặp lại không được xóa dòng dịch vụ đã chốt giá
	lineCount := func(t *testing.T) int64 {
		var n int64
		require.NoError(t, db.Model(&models.BookedService{}).
			Where("booking_id = ?", booking.ID).Count(&n).Error)
		return n
	}
	require.Equal(t, int64(1), lineCount(t))

	again, err := svc.FinalizeCancel(booking.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BookingStatusCancelled, again.Status)
	require.Equal(t, int64(1), lineCount(t))

	require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&invoice).Error)
	require.Equal(t, constants.InvoiceStatusRefundedFull, invoice.Status)
}
