package jobs

import (
	"log"
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"

	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày: đồng bộ trạng thái voucher theo ngày hiệu lực
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang đồng bộ trạng thái voucher lúc: %v", now)
		changed, err := services.RefreshVoucherStatuses(config.DB, now)
		if err != nil {
			log.Printf("Lỗi khi đồng bộ trạng thái voucher: %v", err)
			return
		}
		if changed > 0 {
			log.Printf("Đã cập nhật %d voucher", changed)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
