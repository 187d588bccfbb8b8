package services

import (
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"gorm.io/gorm"
)

// IsRoomFree kiểm tra phòng có trống trong khoảng [checkIn, checkOut) không.
// Hai khoảng giao nhau khi existing.check_in < checkOut AND existing.check_out > checkIn;
// nhờ khoảng nửa mở, khách trả phòng và khách nhận phòng cùng ngày không đụng nhau.
// excludeBookingID dùng khi kiểm tra lại một booking đang được sửa (0 = không loại trừ).
func IsRoomFree(db *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	query := db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", constants.BookingStatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)

	if excludeBookingID != 0 {
		query = query.Where("id <> ?", excludeBookingID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// IsRoomFreeOn kiểm tra phòng có khách trong một ngày cụ thể không.
// Dùng khoảng đóng check_in <= d <= check_out vì nhân viên làm việc trong
// suốt thời gian khách ở, không chỉ tại thời điểm giao nhận phòng.
func IsRoomFreeOn(db *gorm.DB, roomID uint, date time.Time) (bool, error) {
	day := DateOnly(date)

	var count int64
	err := db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", constants.BookingStatusCancelled).
		Where("check_in_date <= ? AND check_out_date >= ?", day, day).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// BookedRanges trả về các khoảng ngày đã đặt của phòng (phục vụ lịch đặt phòng phía client)
func BookedRanges(db *gorm.DB, roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Model(&models.Booking{}).
		Select("id", "check_in_date", "check_out_date", "status").
		Where("room_id = ?", roomID).
		Where("status <> ?", constants.BookingStatusCancelled).
		Order("check_in_date").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
