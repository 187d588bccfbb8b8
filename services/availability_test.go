package services

import (
	"testing"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/builders"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRoom(t *testing.T, db *gorm.DB, price int64) models.Room {
	t.Helper()

	roomType := models.RoomType{Name: "Phòng đôi", People: 2, NumBed: 1, Price: price}
	require.NoError(t, db.Create(&roomType).Error)

	room := models.Room{RoomName: "P101", RoomTypeID: roomType.ID, Price: price, Status: constants.RoomStatusAvailable}
	require.NoError(t, db.Create(&room).Error)
	room.RoomType = roomType
	return room
}

func seedCustomer(t *testing.T, db *gorm.DB) models.Customer {
	t.Helper()
	customer := models.Customer{Name: "Nguyễn Văn A", Email: "a@example.com", PhoneNumber: "0901234567"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedBooking(t *testing.T, db *gorm.DB, roomID, customerID uint, checkIn, checkOut string, status string) models.Booking {
	t.Helper()

	booking := builders.NewBookingBuilder().
		WithCode(NewBookingCode()).
		WithCustomer(customerID).
		WithRoom(roomID).
		WithStay(mustDate(t, checkIn), mustDate(t, checkOut)).
		WithStatus(status).
		Build()
	require.NoError(t, db.Create(booking).Error)
	return *booking
}

func TestIsRoomFreeOverlap(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)

	seedBooking(t, db, room.ID, customer.ID, "10/09/2026", "13/09/2026", constants.BookingStatusPending)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"trùng hoàn toàn", "10/09/2026", "13/09/2026", false},
		{"giao một phần đầu", "08/09/2026", "11/09/2026", false},
		{"giao một phần cuối", "12/09/2026", "15/09/2026", false},
		{"bao trùm", "09/09/2026", "14/09/2026", false},
		{"nằm trong", "11/09/2026", "12/09/2026", false},
		{"trước hẳn", "05/09/2026", "08/09/2026", true},
		{"sau hẳn", "15/09/2026", "18/09/2026", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			free, err := IsRoomFree(db, room.ID, mustDate(t, tc.checkIn), mustDate(t, tc.checkOut), 0)
			require.NoError(t, err)
			require.Equal(t, tc.want, free)
		})
	}
}

// Khách trả phòng và khách nhận phòng cùng ngày không được coi là trùng
func TestIsRoomFreeBackToBack(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)

	seedBooking(t, db, room.ID, customer.ID, "10/09/2026", "13/09/2026", constants.BookingStatusPending)

	free, err := IsRoomFree(db, room.ID, mustDate(t, "13/09/2026"), mustDate(t, "15/09/2026"), 0)
	require.NoError(t, err)
	require.True(t, free)

	free, err = IsRoomFree(db, room.ID, mustDate(t, "08/09/2026"), mustDate(t, "10/09/2026"), 0)
	require.NoError(t, err)
	require.True(t, free)
}

func TestIsRoomFreeIgnoresCancelled(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)

	seedBooking(t, db, room.ID, customer.ID, "10/09/2026", "13/09/2026", constants.BookingStatusCancelled)

	free, err := IsRoomFree(db, room.ID, mustDate(t, "10/09/2026"), mustDate(t, "13/09/2026"), 0)
	require.NoError(t, err)
	require.True(t, free)
}

func TestIsRoomFreeExcludesOwnBooking(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)

	booking := seedBooking(t, db, room.ID, customer.ID, "10/09/2026", "13/09/2026", constants.BookingStatusPending)

	free, err := IsRoomFree(db, room.ID, mustDate(t, "10/09/2026"), mustDate(t, "13/09/2026"), booking.ID)
	require.NoError(t, err)
	require.True(t, free)
}

// Lịch làm việc dùng khoảng đóng: ngày nhận và ngày trả phòng đều tính là có khách
func TestIsRoomFreeOnClosedInterval(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)

	seedBooking(t, db, room.ID, customer.ID, "10/09/2026", "13/09/2026", constants.BookingStatusPending)

	for _, day := range []string{"10/09/2026", "11/09/2026", "13/09/2026"} {
		free, err := IsRoomFreeOn(db, room.ID, mustDate(t, day))
		require.NoError(t, err)
		require.False(t, free, "ngày %s phải tính là có khách", day)
	}

	free, err := IsRoomFreeOn(db, room.ID, mustDate(t, "14/09/2026"))
	require.NoError(t, err)
	require.True(t, free)
}

func TestBookedRanges(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, 500000)
	customer := seedCustomer(t, db)

	seedBooking(t, db, room.ID, customer.ID, "20/09/2026", "22/09/2026", constants.BookingStatusPending)
	seedBooking(t, db, room.ID, customer.ID, "10/09/2026", "13/09/2026", constants.BookingStatusCheckedIn)
	seedBooking(t, db, room.ID, customer.ID, "15/09/2026", "17/09/2026", constants.BookingStatusCancelled)

	ranges, err := BookedRanges(db, room.ID)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	// Xếp theo ngày nhận phòng tăng dần, booking đã hủy bị loại
	require.Equal(t, mustDate(t, "10/09/2026"), ranges[0].CheckInDate)
	require.Equal(t, mustDate(t, "20/09/2026"), ranges[1].CheckInDate)
}
