package dto

import "time"

type CreateScheduleRequest struct {
	RoomID     uint   `json:"roomId"`
	EmployeeID uint   `json:"employeeId"`
	WorkDate   string `json:"workDate"` // 02/01/2006
	WorkType   string `json:"workType"` // DonDep | SuaChua
}

type UpdateScheduleRequest struct {
	ID         uint   `json:"id"`
	RoomID     uint   `json:"roomId"`
	EmployeeID uint   `json:"employeeId"`
	WorkDate   string `json:"workDate"`
	WorkType   string `json:"workType"`
	Done       *bool  `json:"done,omitempty"`
}

type ScheduleEmployeeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type ScheduleResponse struct {
	ID        uint                     `json:"id"`
	Employee  ScheduleEmployeeResponse `json:"employee"`
	RoomID    uint                     `json:"roomId"`
	RoomName  string                   `json:"roomName"`
	WorkDate  string                   `json:"workDate"`
	WorkType  string                   `json:"workType"`
	Done      bool                     `json:"done"`
	CreatedAt time.Time                `json:"createdAt"`
}
