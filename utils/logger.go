package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

var (
	InfoLogger    *log.Logger
	ErrorLogger   *log.Logger
	PaymentLogger *log.Logger // Nhật ký riêng cho webhook thanh toán
)

func init() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Fatal(err)
	}

	timestamp := time.Now().Format("2006-01-02")
	logFile, err := os.OpenFile(fmt.Sprintf("logs/app-%s.log", timestamp), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}

	paymentFile, err := os.OpenFile(fmt.Sprintf("logs/payment-%s.log", timestamp), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}

	InfoLogger = log.New(logFile, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(logFile, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	PaymentLogger = log.New(paymentFile, "PAYMENT: ", log.Ldate|log.Ltime)
}

// LogInfo ghi log thông tin
func LogInfo(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
	log.Printf("[INFO] "+format, v...)
}

// LogError ghi log lỗi
func LogError(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
	log.Printf("[ERROR] "+format, v...)
}

// LogPayment ghi nhật ký giao dịch thanh toán
func LogPayment(format string, v ...interface{}) {
	PaymentLogger.Printf(format, v...)
}
