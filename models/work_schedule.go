package models

import "time"

// WorkSchedule là một ca làm việc của nhân viên trong một ngày.
// Mỗi nhân viên tối đa một ca mỗi ngày.
type WorkSchedule struct {
	ID         uint               `json:"id" gorm:"primaryKey"`
	EmployeeID uint               `json:"employeeId" gorm:"index"`
	Employee   Employee           `json:"employee" gorm:"foreignKey:EmployeeID"`
	WorkDate   time.Time          `json:"workDate" gorm:"index"`
	WorkType   string             `json:"workType" gorm:"size:20"` // DonDep | SuaChua
	Done       bool               `json:"done" gorm:"default:false"`
	Detail     WorkScheduleDetail `json:"detail" gorm:"foreignKey:WorkScheduleID"`
	CreatedAt  time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
}

// WorkScheduleDetail gắn ca làm việc với một phòng cụ thể.
type WorkScheduleDetail struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	WorkScheduleID uint      `json:"workScheduleId" gorm:"index"`
	RoomID         uint      `json:"roomId" gorm:"index"`
	Room           Room      `json:"room" gorm:"foreignKey:RoomID"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
