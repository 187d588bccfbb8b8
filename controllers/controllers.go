package controllers

import (
	"net/http"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/errors"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/response"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/utils"

	"github.com/gin-gonic/gin"
)

var (
	bookingService *services.BookingService
	momoConfig     config.MomoConfig
)

// Init nhận các service dùng chung cho controllers, gọi một lần lúc khởi động
func Init(svc *services.BookingService, momoCfg config.MomoConfig) {
	bookingService = svc
	momoConfig = momoCfg
}

// respondAppError ánh xạ AppError sang mã HTTP tương ứng
func respondAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		utils.LogError("Lỗi không xác định: %v", err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeBookingNotFound, errors.ErrCodeRoomNotFound,
		errors.ErrCodeCustomerNotFound, errors.ErrCodeEmployeeNotFound,
		errors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, response.Response{Code: 0, Mess: appErr.Message})
	case errors.ErrCodeValidation, errors.ErrCodeInvalidDate,
		errors.ErrCodeInvalidFormat, errors.ErrCodeRequiredField,
		errors.ErrCodeInvalidToken64:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeRoomUnavailable, errors.ErrCodeInvalidTransition,
		errors.ErrCodeScheduleConflict, errors.ErrCodeRoleMismatch:
		response.Conflict(c, appErr.Message)
	default:
		utils.LogError("Lỗi server: %v", appErr)
		response.ServerError(c)
	}
}
