package controllers

import (
	"strconv"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/response"

	"github.com/gin-gonic/gin"
)

func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("status = 1").Order("name").Find(&services).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, services)
}

func GetServiceDetail(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID dịch vụ không hợp lệ")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, serviceID).Error; err != nil {
		response.NotFoundEntity(c, "dịch vụ")
		return
	}
	response.Success(c, service)
}

func CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if service.Name == "" {
		response.BadRequest(c, "Tên dịch vụ là bắt buộc")
		return
	}
	if service.Price <= 0 {
		response.BadRequest(c, "Giá dịch vụ phải lớn hơn 0")
		return
	}

	service.ID = 0
	service.Status = 1
	if err := config.DB.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, service)
}

func UpdateService(c *gin.Context) {
	var request models.Service
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, request.ID).Error; err != nil {
		response.NotFoundEntity(c, "dịch vụ")
		return
	}

	if request.Name != "" {
		service.Name = request.Name
	}
	if request.Price > 0 {
		service.Price = request.Price
	}
	if request.Description != "" {
		service.Description = request.Description
	}
	if request.Avatar != "" {
		service.Avatar = request.Avatar
	}
	service.Status = request.Status

	if err := config.DB.Save(&service).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, service)
}

// MarkBookedServiceDone đánh dấu một dòng dịch vụ đã phục vụ xong
func MarkBookedServiceDone(c *gin.Context) {
	lineID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID dòng dịch vụ không hợp lệ")
		return
	}

	var line models.BookedService
	if err := config.DB.First(&line, lineID).Error; err != nil {
		response.NotFoundEntity(c, "dòng dịch vụ")
		return
	}

	line.Done = true
	if err := config.DB.Save(&line).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCache()
	response.Success(c, gin.H{"id": line.ID, "done": line.Done})
}
