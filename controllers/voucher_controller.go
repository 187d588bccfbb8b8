package controllers

import (
	"strconv"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/dto"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/response"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"

	"github.com/gin-gonic/gin"
)

func convertToVoucherResponse(voucher models.Voucher) dto.VoucherResponse {
	return dto.VoucherResponse{
		ID:         voucher.ID,
		Name:       voucher.Name,
		Code:       voucher.Code,
		PercentOff: voucher.PercentOff,
		MinSpend:   voucher.MinSpend,
		StartDate:  voucher.StartDate.Format(services.DateLayout),
		EndDate:    voucher.EndDate.Format(services.DateLayout),
		Status:     voucher.Status,
		CreatedAt:  voucher.CreatedAt,
		UpdatedAt:  voucher.UpdatedAt,
	}
}

func GetVouchers(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	query := config.DB.Model(&models.Voucher{})
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var vouchers []models.Voucher
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&vouchers).Error; err != nil {
		response.ServerError(c)
		return
	}

	voucherResponses := make([]dto.VoucherResponse, 0, len(vouchers))
	for _, voucher := range vouchers {
		voucherResponses = append(voucherResponses, convertToVoucherResponse(voucher))
	}

	response.SuccessWithPagination(c, voucherResponses, page, limit, int(total))
}

func GetVoucherDetail(c *gin.Context) {
	voucherID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID voucher không hợp lệ")
		return
	}

	var voucher models.Voucher
	if err := config.DB.First(&voucher, voucherID).Error; err != nil {
		response.NotFoundEntity(c, "voucher")
		return
	}

	response.Success(c, convertToVoucherResponse(voucher))
}

func CreateVoucher(c *gin.Context) {
	var request dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Name == "" || request.Code == "" {
		response.BadRequest(c, "Tên và mã voucher là bắt buộc")
		return
	}

	startDate, err := ConvertDateToISOFormat(request.StartDate)
	if err != nil {
		response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
		return
	}
	endDate, err := ConvertDateToISOFormat(request.EndDate)
	if err != nil {
		response.BadRequest(c, "Ngày kết thúc không hợp lệ")
		return
	}
	if endDate.Before(startDate) {
		response.BadRequest(c, "Ngày kết thúc phải sau ngày bắt đầu")
		return
	}

	voucher := models.Voucher{
		Name:       request.Name,
		Code:       request.Code,
		PercentOff: request.PercentOff,
		MinSpend:   request.MinSpend,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     constants.VoucherStatusActive,
	}
	if err := voucher.ValidatePercent(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&voucher).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToVoucherResponse(voucher))
}

func UpdateVoucher(c *gin.Context) {
	var request dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var voucher models.Voucher
	if err := config.DB.First(&voucher, request.ID).Error; err != nil {
		response.NotFoundEntity(c, "voucher")
		return
	}

	if request.Name != "" {
		voucher.Name = request.Name
	}
	if request.Code != "" {
		voucher.Code = request.Code
	}
	if request.PercentOff != 0 {
		voucher.PercentOff = request.PercentOff
	}
	if request.MinSpend != 0 {
		voucher.MinSpend = request.MinSpend
	}
	if request.StartDate != "" {
		startDate, err := ConvertDateToISOFormat(request.StartDate)
		if err != nil {
			response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
			return
		}
		voucher.StartDate = startDate
	}
	if request.EndDate != "" {
		endDate, err := ConvertDateToISOFormat(request.EndDate)
		if err != nil {
			response.BadRequest(c, "Ngày kết thúc không hợp lệ")
			return
		}
		voucher.EndDate = endDate
	}
	if err := voucher.ValidatePercent(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&voucher).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToVoucherResponse(voucher))
}

// ChangeVoucherStatus bật/tắt voucher thủ công
func ChangeVoucherStatus(c *gin.Context) {
	var request dto.ChangeVoucherStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Status != constants.VoucherStatusActive && request.Status != constants.VoucherStatusExpired {
		response.BadRequest(c, "Trạng thái voucher không hợp lệ")
		return
	}

	var voucher models.Voucher
	if err := config.DB.First(&voucher, request.ID).Error; err != nil {
		response.NotFoundEntity(c, "voucher")
		return
	}

	voucher.Status = request.Status
	if err := config.DB.Save(&voucher).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": voucher.ID, "status": voucher.Status})
}

// DeleteVoucher chỉ xóa khi voucher chưa gắn với đặt phòng nào
func DeleteVoucher(c *gin.Context) {
	voucherID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID voucher không hợp lệ")
		return
	}

	var voucher models.Voucher
	if err := config.DB.First(&voucher, voucherID).Error; err != nil {
		response.NotFoundEntity(c, "voucher")
		return
	}

	var used int64
	if err := config.DB.Model(&models.Booking{}).Where("voucher_id = ?", voucher.ID).Count(&used).Error; err != nil {
		response.ServerError(c)
		return
	}
	if used > 0 {
		response.Conflict(c, "Voucher đã được sử dụng trong đặt phòng, không thể xóa")
		return
	}

	if err := config.DB.Delete(&voucher).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": voucher.ID})
}
