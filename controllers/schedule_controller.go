package controllers

import (
	"strconv"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/dto"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/response"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/validator"

	"github.com/gin-gonic/gin"
)

func convertToScheduleResponse(schedule models.WorkSchedule, roomName string) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID: schedule.ID,
		Employee: dto.ScheduleEmployeeResponse{
			ID:   schedule.Employee.ID,
			Name: schedule.Employee.Name,
			Role: schedule.Employee.Role,
		},
		RoomID:    schedule.Detail.RoomID,
		RoomName:  roomName,
		WorkDate:  schedule.WorkDate.Format(services.DateLayout),
		WorkType:  schedule.WorkType,
		Done:      schedule.Done,
		CreatedAt: schedule.CreatedAt,
	}
}

func GetSchedules(c *gin.Context) {
	dateStr := c.Query("date")
	employeeIDStr := c.Query("employeeId")

	query := config.DB.Model(&models.WorkSchedule{}).
		Preload("Employee").
		Preload("Detail")

	if dateStr != "" {
		workDate, err := ConvertDateToISOFormat(dateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng date")
			return
		}
		query = query.Where("work_date = ?", services.DateOnly(workDate))
	}
	if employeeIDStr != "" {
		employeeID, err := strconv.Atoi(employeeIDStr)
		if err != nil {
			response.BadRequest(c, "employeeId không hợp lệ")
			return
		}
		query = query.Where("employee_id = ?", employeeID)
	}

	var schedules []models.WorkSchedule
	if err := query.Order("work_date DESC").Find(&schedules).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Gom tên phòng một lượt thay vì truy vấn từng dòng
	roomIDs := make([]uint, 0, len(schedules))
	for _, schedule := range schedules {
		roomIDs = append(roomIDs, schedule.Detail.RoomID)
	}
	roomNames := make(map[uint]string)
	if len(roomIDs) > 0 {
		var rooms []models.Room
		if err := config.DB.Where("id IN ?", roomIDs).Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		for _, room := range rooms {
			roomNames[room.ID] = room.RoomName
		}
	}

	scheduleResponses := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		scheduleResponses = append(scheduleResponses, convertToScheduleResponse(schedule, roomNames[schedule.Detail.RoomID]))
	}

	response.Success(c, scheduleResponses)
}

func CreateSchedule(c *gin.Context) {
	var request dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCreateSchedule(&request); err != nil {
		respondAppError(c, err)
		return
	}

	workDate, err := ConvertDateToISOFormat(request.WorkDate)
	if err != nil {
		response.BadRequest(c, "Ngày làm việc không hợp lệ")
		return
	}

	schedule, err := services.CreateSchedule(config.DB, services.ScheduleInput{
		RoomID:     request.RoomID,
		EmployeeID: request.EmployeeID,
		WorkDate:   workDate,
		WorkType:   request.WorkType,
	})
	if err != nil {
		respondAppError(c, err)
		return
	}

	respondScheduleDetail(c, schedule.ID, request.RoomID)
}

func UpdateSchedule(c *gin.Context) {
	var request dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	workDate, err := ConvertDateToISOFormat(request.WorkDate)
	if err != nil {
		response.BadRequest(c, "Ngày làm việc không hợp lệ")
		return
	}

	schedule, err := services.UpdateSchedule(config.DB, services.ScheduleInput{
		ScheduleID: request.ID,
		RoomID:     request.RoomID,
		EmployeeID: request.EmployeeID,
		WorkDate:   workDate,
		WorkType:   request.WorkType,
	}, request.Done)
	if err != nil {
		respondAppError(c, err)
		return
	}

	respondScheduleDetail(c, schedule.ID, request.RoomID)
}

func respondScheduleDetail(c *gin.Context, scheduleID, roomID uint) {
	var schedule models.WorkSchedule
	if err := config.DB.Preload("Employee").Preload("Detail").First(&schedule, scheduleID).Error; err != nil {
		response.ServerError(c)
		return
	}

	var roomName string
	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err == nil {
		roomName = room.RoomName
	}

	response.Success(c, convertToScheduleResponse(schedule, roomName))
}
