package services

import "time"

// Clock trừu tượng hóa thời gian hiện tại để các quy tắc theo ngày
// (cửa sổ hoàn tiền, giờ nhận phòng, hiệu lực voucher) test được.
type Clock interface {
	Now() time.Time
}

// RealClock dùng thời gian hệ thống
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// DateOnly cắt giờ phút giây, giữ lại ngày theo local time
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
