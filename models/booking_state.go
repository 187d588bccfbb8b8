package models

import (
	"errors"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
)

// BookingState định nghĩa interface cho các trạng thái đặt phòng
type BookingState interface {
	CheckIn(booking *Booking) error
	CheckOut(booking *Booking) error
	RequestCancel(booking *Booking, reason string) error
	RevertCancel(booking *Booking) error
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) CheckIn(booking *Booking) error {
	booking.Status = constants.BookingStatusCheckedIn
	return nil
}

func (s *PendingState) CheckOut(booking *Booking) error {
	return errors.New("chưa nhận phòng, không thể trả phòng")
}

func (s *PendingState) RequestCancel(booking *Booking, reason string) error {
	booking.Status = constants.BookingStatusCancelRequested
	booking.CancelReason = reason
	return nil
}

func (s *PendingState) RevertCancel(booking *Booking) error {
	return errors.New("đặt phòng không ở trạng thái yêu cầu hủy")
}

// CheckedInState trạng thái đã nhận phòng
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(booking *Booking) error {
	return errors.New("đặt phòng đã được nhận phòng")
}

func (s *CheckedInState) CheckOut(booking *Booking) error {
	booking.Status = constants.BookingStatusCheckedOut
	return nil
}

func (s *CheckedInState) RequestCancel(booking *Booking, reason string) error {
	return errors.New("không thể hủy sau khi đã nhận phòng")
}

func (s *CheckedInState) RevertCancel(booking *Booking) error {
	return errors.New("đặt phòng không ở trạng thái yêu cầu hủy")
}

// CheckedOutState trạng thái đã trả phòng
type CheckedOutState struct{}

func (s *CheckedOutState) CheckIn(booking *Booking) error {
	return errors.New("đặt phòng đã hoàn thành")
}

func (s *CheckedOutState) CheckOut(booking *Booking) error {
	return errors.New("đặt phòng đã trả phòng")
}

func (s *CheckedOutState) RequestCancel(booking *Booking, reason string) error {
	return errors.New("không thể hủy đặt phòng đã hoàn thành")
}

func (s *CheckedOutState) RevertCancel(booking *Booking) error {
	return errors.New("đặt phòng không ở trạng thái yêu cầu hủy")
}

// CancelRequestedState trạng thái yêu cầu hủy
type CancelRequestedState struct{}

func (s *CancelRequestedState) CheckIn(booking *Booking) error {
	return errors.New("đặt phòng đang chờ hủy, không thể nhận phòng")
}

func (s *CancelRequestedState) CheckOut(booking *Booking) error {
	return errors.New("đặt phòng đang chờ hủy, không thể trả phòng")
}

func (s *CancelRequestedState) RequestCancel(booking *Booking, reason string) error {
	return errors.New("đặt phòng đã có yêu cầu hủy")
}

func (s *CancelRequestedState) RevertCancel(booking *Booking) error {
	booking.Status = constants.BookingStatusPending
	booking.CancelReason = ""
	return nil
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) CheckIn(booking *Booking) error {
	return errors.New("đặt phòng đã bị hủy")
}

func (s *CancelledState) CheckOut(booking *Booking) error {
	return errors.New("đặt phòng đã bị hủy")
}

func (s *CancelledState) RequestCancel(booking *Booking, reason string) error {
	return errors.New("đặt phòng đã bị hủy")
}

func (s *CancelledState) RevertCancel(booking *Booking) error {
	return errors.New("đặt phòng đã bị hủy, không thể khôi phục")
}

// GetBookingState trả về state tương ứng với trạng thái đặt phòng
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusCheckedIn:
		return &CheckedInState{}
	case constants.BookingStatusCheckedOut:
		return &CheckedOutState{}
	case constants.BookingStatusCancelRequested:
		return &CancelRequestedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
