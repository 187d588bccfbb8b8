package controllers

import (
	"strconv"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/response"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"

	"github.com/gin-gonic/gin"
)

func GetMemberships(c *gin.Context) {
	var memberships []models.Membership
	if err := config.DB.Order("min_spend ASC").Find(&memberships).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, memberships)
}

// GetCustomerMembership trả về hạng hiện tại và tổng chi tiêu tích lũy của khách
func GetCustomerMembership(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		response.BadRequest(c, "ID khách hàng không hợp lệ")
		return
	}

	var customer models.Customer
	if err := config.DB.Preload("Membership").First(&customer, customerID).Error; err != nil {
		response.NotFoundEntity(c, "khách hàng")
		return
	}

	spend, err := services.PaidSpend(config.DB, customer.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	result := gin.H{
		"customerId": customer.ID,
		"totalSpend": spend,
	}
	if customer.Membership != nil {
		result["membership"] = customer.Membership
	}
	response.Success(c, result)
}

// RecalculateMembership tính lại hạng thành viên cho một khách theo yêu cầu
func RecalculateMembership(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		response.BadRequest(c, "ID khách hàng không hợp lệ")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, customerID).Error; err != nil {
		response.NotFoundEntity(c, "khách hàng")
		return
	}

	if err := services.RecomputeTier(config.DB, customer.ID); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("Membership").First(&customer, customer.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := gin.H{"customerId": customer.ID}
	if customer.Membership != nil {
		result["membership"] = customer.Membership
	}
	response.Success(c, result)
}
