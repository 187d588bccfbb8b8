package validator

import (
	"regexp"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/dto"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/errors"
)

// ValidateCreateBooking validate yêu cầu tạo đặt phòng trước khi vào nghiệp vụ
func ValidateCreateBooking(request *dto.CreateBookingRequest) error {
	if request.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phòng không được để trống", nil)
	}

	if request.CustomerID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Khách hàng không được để trống", nil)
	}

	if request.CheckInDate == "" || request.CheckOutDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận phòng và trả phòng không được để trống", nil)
	}

	if request.PaymentMethod != constants.PaymentMethodCash && request.PaymentMethod != constants.PaymentMethodMomo {
		return errors.NewAppError(errors.ErrCodeValidation, "Phương thức thanh toán không hợp lệ", nil)
	}

	if request.GuestEmail != "" && !isValidEmail(request.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if request.GuestPhone != "" && !isValidPhone(request.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	for _, selection := range request.Services {
		if selection.Quantity < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Số lượng dịch vụ không được âm", nil)
		}
	}

	return nil
}

// ValidateCreateSchedule validate yêu cầu xếp lịch làm việc
func ValidateCreateSchedule(request *dto.CreateScheduleRequest) error {
	if request.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phòng không được để trống", nil)
	}

	if request.EmployeeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nhân viên không được để trống", nil)
	}

	if request.WorkDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày làm việc không được để trống", nil)
	}

	if request.WorkType != constants.WorkTypeCleaning && request.WorkType != constants.WorkTypeRepair {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại công việc không hợp lệ", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
