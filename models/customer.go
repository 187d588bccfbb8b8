package models

import "time"

type Customer struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	UserID       *uint       `json:"userId"` // Liên kết tài khoản đăng nhập
	User         *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name         string      `json:"name" gorm:"size:100"`
	Email        string      `json:"email" gorm:"size:100"`
	PhoneNumber  string      `json:"phoneNumber" gorm:"size:11"`
	MembershipID *uint       `json:"membershipId"` // Hạng thành viên hiện tại
	Membership   *Membership `json:"membership,omitempty" gorm:"foreignKey:MembershipID"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}
