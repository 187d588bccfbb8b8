package main

import (
	"log"
	"net/http"
	"os"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/controllers"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/jobs"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/routes"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	// if err := config.DB.AutoMigrate(&models.User{}, &models.Customer{}, &models.Membership{},
	// 	&models.RoomType{}, &models.Room{}, &models.Voucher{}, &models.Service{},
	// 	&models.Booking{}, &models.BookedService{}, &models.Invoice{},
	// 	&models.Employee{}, &models.WorkSchedule{}, &models.WorkScheduleDetail{}); err != nil {
	// 	panic("Failed to migrate tables: " + err.Error())
	// }
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	momoCfg := config.LoadMomoConfig()
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:      config.DB,
		Clock:   services.RealClock{},
		Gateway: services.NewMomoGateway(momoCfg),
		Logger:  logger.NewDefaultLogger(logger.InfoLevel).WithPrefix("booking"),
	})
	controllers.Init(bookingService, momoCfg)

	migrateTables()

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
