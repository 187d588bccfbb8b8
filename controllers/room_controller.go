package controllers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/dto"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/response"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/services"

	"github.com/gin-gonic/gin"
)

var roomCacheKey = "rooms:all"

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.ID,
		RoomName:    room.RoomName,
		RoomTypeID:  room.RoomTypeID,
		RoomType:    room.RoomType.Name,
		People:      room.RoomType.People,
		NumBed:      room.RoomType.NumBed,
		Price:       room.Price,
		Description: room.Description,
		Status:      room.Status,
		Avatar:      room.Avatar,
	}
}

func loadAllRooms() ([]models.Room, error) {
	var rooms []models.Room

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, roomCacheKey, &rooms); err == nil && len(rooms) > 0 {
			return rooms, nil
		}
	}

	if err := config.DB.Preload("RoomType").Find(&rooms).Error; err != nil {
		return nil, err
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, roomCacheKey, rooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}
	return rooms, nil
}

func GetRooms(c *gin.Context) {
	rooms, err := loadAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	statusFilter := c.Query("status")
	searchQuery := c.Query("search")

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

	// Tìm kiếm gần đúng: xếp hạng theo độ khớp rồi mới phân trang
	if searchQuery != "" {
		var roomTypes []models.RoomType
		if err := config.DB.Find(&roomTypes).Error; err != nil {
			response.ServerError(c)
			return
		}
		scored := services.SearchRooms(searchQuery, rooms, roomTypes)
		rooms = make([]models.Room, 0, len(scored))
		for _, s := range scored {
			rooms = append(rooms, s.Room)
		}
	}

	filteredRooms := make([]models.Room, 0)
	for _, room := range rooms {
		if nameFilter != "" && !strings.Contains(strings.ToLower(room.RoomName), strings.ToLower(nameFilter)) {
			continue
		}
		if statusFilter != "" && room.Status != statusFilter {
			continue
		}
		filteredRooms = append(filteredRooms, room)
	}

	totalFiltered := len(filteredRooms)

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredRooms = []models.Room{}
	} else if end > totalFiltered {
		filteredRooms = filteredRooms[start:]
	} else {
		filteredRooms = filteredRooms[start:end]
	}

	roomResponses := make([]dto.RoomResponse, 0, len(filteredRooms))
	for _, room := range filteredRooms {
		roomResponses = append(roomResponses, convertToRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, totalFiltered)
}

func GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, roomID).Error; err != nil {
		response.NotFoundEntity(c, "phòng")
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// GetRoomBookedDates trả về các khoảng ngày phòng đã có khách,
// phía client dùng để khóa ngày trên lịch đặt phòng.
func GetRoomBookedDates(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFoundEntity(c, "phòng")
		return
	}

	bookings, err := services.BookedRanges(config.DB, room.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	ranges := make([]dto.BookedRangeResponse, 0, len(bookings))
	for _, booking := range bookings {
		ranges = append(ranges, dto.BookedRangeResponse{
			BookingID:    booking.ID,
			CheckInDate:  booking.CheckInDate,
			CheckOutDate: booking.CheckOutDate,
			Status:       booking.Status,
		})
	}

	response.Success(c, ranges)
}

// CheckRoomAvailable kiểm tra phòng trống trong một khoảng ngày
func CheckRoomAvailable(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")
	if fromDateStr == "" || toDateStr == "" {
		response.BadRequest(c, "fromDate và toDate là bắt buộc")
		return
	}

	fromDate, err := ConvertDateToISOFormat(fromDateStr)
	if err != nil {
		response.BadRequest(c, "Sai định dạng fromDate")
		return
	}
	toDate, err := ConvertDateToISOFormat(toDateStr)
	if err != nil {
		response.BadRequest(c, "Sai định dạng toDate")
		return
	}

	free, err := services.IsRoomFree(config.DB, uint(roomID), fromDate, toDate, 0)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"roomId": roomID, "available": free})
}

func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.RoomName == "" {
		response.BadRequest(c, "Tên phòng là bắt buộc")
		return
	}
	if request.Price <= 0 {
		response.BadRequest(c, "Giá phòng phải lớn hơn 0")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, request.RoomTypeID).Error; err != nil {
		response.NotFoundEntity(c, "loại phòng")
		return
	}

	room := models.Room{
		RoomName:    request.RoomName,
		RoomTypeID:  request.RoomTypeID,
		Price:       request.Price,
		Description: request.Description,
		Avatar:      request.Avatar,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	room.RoomType = roomType
	response.Success(c, convertToRoomResponse(room))
}

func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFoundEntity(c, "phòng")
		return
	}

	if request.RoomName != "" {
		room.RoomName = request.RoomName
	}
	if request.RoomTypeID != 0 {
		var roomType models.RoomType
		if err := config.DB.First(&roomType, request.RoomTypeID).Error; err != nil {
			response.NotFoundEntity(c, "loại phòng")
			return
		}
		room.RoomTypeID = request.RoomTypeID
	}
	if request.Price > 0 {
		room.Price = request.Price
	}
	if request.Description != "" {
		room.Description = request.Description
	}
	if request.Avatar != "" {
		room.Avatar = request.Avatar
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, gin.H{"id": room.ID})
}

// ChangeRoomStatus đổi trạng thái phòng (dọn dẹp, sửa chữa, mở lại...)
func ChangeRoomStatus(c *gin.Context) {
	var request dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.ID).Error; err != nil {
		response.NotFoundEntity(c, "phòng")
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, gin.H{"id": room.ID, "status": room.Status})
}

func invalidateRoomCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, roomCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}
