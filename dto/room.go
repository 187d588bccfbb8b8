package dto

import "time"

type CreateRoomRequest struct {
	RoomName    string `json:"roomName"`
	RoomTypeID  uint   `json:"roomTypeId"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
}

type UpdateRoomRequest struct {
	ID          uint   `json:"id"`
	RoomName    string `json:"roomName,omitempty"`
	RoomTypeID  uint   `json:"roomTypeId,omitempty"`
	Price       int64  `json:"price,omitempty"`
	Description string `json:"description,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

type ChangeRoomStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type RoomResponse struct {
	ID          uint   `json:"id"`
	RoomName    string `json:"roomName"`
	RoomTypeID  uint   `json:"roomTypeId"`
	RoomType    string `json:"roomType"`
	People      int    `json:"people"`
	NumBed      int    `json:"numBed"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Avatar      string `json:"avatar"`
}

// BookedRangeResponse là một khoảng ngày phòng đã có khách
type BookedRangeResponse struct {
	BookingID    uint      `json:"bookingId"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Status       string    `json:"status"`
}
