package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// MomoConfig chứa thông tin tích hợp cổng thanh toán ví MoMo
type MomoConfig struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string
	Endpoint    string // URL tạo giao dịch
	RedirectURL string // Trình duyệt quay về sau khi thanh toán
	IPNURL      string // Webhook nhận kết quả thanh toán
	SuccessURL  string // Trang kết quả thành công phía client
	FailureURL  string // Trang kết quả thất bại phía client
}

// LoadMomoConfig đọc cấu hình MoMo từ biến môi trường
func LoadMomoConfig() MomoConfig {
	return MomoConfig{
		PartnerCode: os.Getenv("MOMO_PARTNER_CODE"),
		AccessKey:   os.Getenv("MOMO_ACCESS_KEY"),
		SecretKey:   os.Getenv("MOMO_SECRET_KEY"),
		Endpoint:    os.Getenv("MOMO_ENDPOINT"),
		RedirectURL: os.Getenv("MOMO_REDIRECT_URL"),
		IPNURL:      os.Getenv("MOMO_IPN_URL"),
		SuccessURL:  os.Getenv("MOMO_SUCCESS_URL"),
		FailureURL:  os.Getenv("MOMO_FAILURE_URL"),
	}
}
