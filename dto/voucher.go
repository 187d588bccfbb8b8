package dto

import "time"

type CreateVoucherRequest struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	PercentOff int    `json:"percentOff"`
	MinSpend   int64  `json:"minSpend"`
	StartDate  string `json:"startDate"` // 02/01/2006
	EndDate    string `json:"endDate"`   // 02/01/2006
}

type UpdateVoucherRequest struct {
	ID         uint   `json:"id"`
	Name       string `json:"name,omitempty"`
	Code       string `json:"code,omitempty"`
	PercentOff int    `json:"percentOff,omitempty"`
	MinSpend   int64  `json:"minSpend,omitempty"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
}

type ChangeVoucherStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type VoucherResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	PercentOff int       `json:"percentOff"`
	MinSpend   int64     `json:"minSpend"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
