package models

import "time"

type Employee struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"size:11"`
	Role        string    `json:"role" gorm:"size:20"` // DonDep | SuaChua | LeTan
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
