package routes

import (
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/controllers"
	middlewares "github.com/DungDEV-code/Resort-BookingRoom-sub001/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	router.Use(middlewares.SessionMiddleware())

	v1 := router.Group("/api/v1")

	// Phòng
	v1.GET("/rooms", controllers.GetRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.GET("/rooms/:id/bookedDates", controllers.GetRoomBookedDates)
	v1.GET("/rooms/:id/checkAvailable", controllers.CheckRoomAvailable)
	v1.POST("/rooms", middlewares.AuthMiddleware(1, 2), controllers.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeRoomStatus)

	// Đặt phòng
	v1.GET("/bookings", middlewares.AuthMiddleware(1, 2), controllers.GetBookings)
	v1.GET("/bookings/:id", controllers.GetBookingDetail)
	v1.GET("/bookingHistory/:customerId", controllers.GetBookingHistory)
	v1.POST("/bookings", controllers.CreateBooking)
	v1.PUT("/bookingCancel", controllers.CancelBooking)
	v1.PUT("/bookingCancelConfirm", middlewares.AuthMiddleware(1, 2), controllers.ConfirmCancelBooking)
	v1.PUT("/bookingCancelRevert", middlewares.AuthMiddleware(1, 2), controllers.RevertCancelBooking)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeBookingStatus)

	// Thanh toán MoMo
	v1.POST("/payment/momo/callback", controllers.MomoCallback)
	v1.GET("/payment/momo/return", controllers.MomoReturn)

	// Hóa đơn
	v1.GET("/invoices", middlewares.AuthMiddleware(1, 2), controllers.GetInvoices)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(1, 2), controllers.GetInvoiceDetail)
	v1.PUT("/invoiceStatus", middlewares.AuthMiddleware(1, 2), controllers.UpdatePaymentStatus)

	// Voucher
	v1.GET("/vouchers", controllers.GetVouchers)
	v1.GET("/vouchers/:id", controllers.GetVoucherDetail)
	v1.POST("/vouchers", middlewares.AuthMiddleware(1, 2), controllers.CreateVoucher)
	v1.PUT("/voucherUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateVoucher)
	v1.PUT("/voucherStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeVoucherStatus)
	v1.DELETE("/vouchers/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteVoucher)

	// Dịch vụ kèm theo
	v1.GET("/services", controllers.GetServices)
	v1.GET("/services/:id", controllers.GetServiceDetail)
	v1.POST("/services", middlewares.AuthMiddleware(1, 2), controllers.CreateService)
	v1.PUT("/serviceUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateService)
	v1.PUT("/bookedServiceDone/:id", middlewares.AuthMiddleware(1, 2), controllers.MarkBookedServiceDone)

	// Lịch làm việc
	v1.GET("/schedules", middlewares.AuthMiddleware(1, 2), controllers.GetSchedules)
	v1.POST("/schedules", middlewares.AuthMiddleware(1, 2), controllers.CreateSchedule)
	v1.PUT("/scheduleUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateSchedule)

	// Hạng thành viên
	v1.GET("/memberships", controllers.GetMemberships)
	v1.GET("/memberships/:customerId", controllers.GetCustomerMembership)
	v1.PUT("/memberships/:customerId/recalculate", middlewares.AuthMiddleware(1, 2), controllers.RecalculateMembership)
}
