package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB mở một database SQLite in-memory riêng cho mỗi test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{}, &models.Customer{}, &models.Membership{},
		&models.RoomType{}, &models.Room{}, &models.Voucher{}, &models.Service{},
		&models.Booking{}, &models.BookedService{}, &models.Invoice{},
		&models.Employee{}, &models.WorkSchedule{}, &models.WorkScheduleDetail{},
	)
	require.NoError(t, err)

	return db
}

// fixedClock trả về một thời điểm cố định, chỉnh được trong test
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(DateLayout, value, time.Local)
	require.NoError(t, err)
	return parsed
}

// fakeGateway ghi lại lời gọi tạo giao dịch thay vì gọi MoMo thật
type fakeGateway struct {
	lastBookingCode string
	lastAmount      int64
	lastExtraData   string
	err             error
}

func (g *fakeGateway) CreatePayURL(ctx context.Context, bookingCode string, amount int64, orderInfo, extraData string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.lastBookingCode = bookingCode
	g.lastAmount = amount
	g.lastExtraData = extraData
	return "https://test.momo.vn/pay/" + bookingCode, nil
}
