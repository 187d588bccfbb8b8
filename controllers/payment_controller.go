package controllers

import (
	"net/http"
	"strconv"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/response"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/utils"

	"github.com/gin-gonic/gin"
)

// MomoCallback là webhook IPN nhận kết quả thanh toán từ MoMo.
// Chữ ký sai là chặn cứng: ghi log và từ chối, không ghi nhận booking.
// Ghi nhận idempotent theo BookingCode nên MoMo gửi lại lần hai vô hại.
func MomoCallback(c *gin.Context) {
	var callback services.MomoCallback
	if err := c.ShouldBindJSON(&callback); err != nil {
		response.BadRequest(c, "Dữ liệu callback không hợp lệ")
		return
	}

	if callback.PartnerCode == "" || callback.OrderID == "" || callback.Signature == "" {
		response.BadRequest(c, "Callback thiếu trường bắt buộc")
		return
	}

	if !services.VerifyCallbackSignature(momoConfig, callback) {
		utils.LogPayment("Chữ ký không hợp lệ cho orderId=%s, từ chối callback", callback.OrderID)
		response.BadRequest(c, "Chữ ký không hợp lệ")
		return
	}

	switch services.ClassifyResultCode(callback.ResultCode) {
	case services.PaymentSucceeded:
		token, err := services.DecodeBookingToken(callback.ExtraData)
		if err != nil {
			utils.LogPayment("extraData hỏng cho orderId=%s: %v", callback.OrderID, err)
			respondAppError(c, err)
			return
		}

		booking, created, err := bookingService.MaterializeMomoBooking(token)
		if err != nil {
			// Đã qua bước xác thực chữ ký: ack để MoMo ngừng gửi lại,
			// lỗi được ghi vào log thanh toán để đối soát thủ công.
			utils.LogPayment("Không thể ghi nhận booking %s: %v", token.BookingCode, err)
			response.Success(c, gin.H{"bookingCode": token.BookingCode, "status": "error"})
			return
		}

		if created {
			utils.LogPayment("Ghi nhận booking %s từ giao dịch %d, số tiền %d", booking.BookingCode, callback.TransID, callback.Amount)
			invalidateBookingCache()
		} else {
			utils.LogPayment("Booking %s đã được ghi nhận trước đó, bỏ qua callback lặp", booking.BookingCode)
		}
		response.Success(c, gin.H{"bookingId": booking.ID, "bookingCode": booking.BookingCode})

	case services.PaymentPending:
		utils.LogPayment("Giao dịch %s đang chờ xử lý, resultCode=%d", callback.OrderID, callback.ResultCode)
		response.Success(c, gin.H{"orderId": callback.OrderID, "status": "pending"})

	default:
		utils.LogPayment("Giao dịch %s thất bại, resultCode=%d: %s", callback.OrderID, callback.ResultCode, callback.Message)
		response.Success(c, gin.H{"orderId": callback.OrderID, "status": "failed"})
	}
}

// MomoReturn xử lý trình duyệt quay về sau khi khách thanh toán xong,
// chuyển hướng về trang kết quả phía client theo resultCode.
func MomoReturn(c *gin.Context) {
	resultCodeStr := c.Query("resultCode")
	resultCode, err := strconv.Atoi(resultCodeStr)
	if err != nil {
		c.Redirect(http.StatusFound, momoConfig.FailureURL)
		return
	}

	if services.ClassifyResultCode(resultCode) == services.PaymentSucceeded {
		c.Redirect(http.StatusFound, momoConfig.SuccessURL)
		return
	}
	c.Redirect(http.StatusFound, momoConfig.FailureURL)
}
