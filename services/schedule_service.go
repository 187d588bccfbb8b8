package services

import (
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/constants"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/errors"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/models"

	"gorm.io/gorm"
)

// ScheduleInput là yêu cầu xếp lịch làm việc cho một phòng trong một ngày
type ScheduleInput struct {
	ScheduleID uint // 0 khi tạo mới, khác 0 khi sửa (loại trừ chính nó khỏi kiểm tra)
	RoomID     uint
	EmployeeID uint
	WorkDate   time.Time
	WorkType   string
}

// CheckAssignment kiểm tra lần lượt và dừng ở lỗi đầu tiên:
// phòng tồn tại; nhân viên tồn tại và đúng chức vụ; phòng không có khách
// trong ngày; phòng chưa có lịch khác; nhân viên chưa có ca khác trong ngày.
// Mỗi lỗi có thông báo riêng để phía gọi phân biệt được.
func CheckAssignment(db *gorm.DB, input ScheduleInput) error {
	var room models.Room
	if err := db.First(&room, input.RoomID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
	}

	var employee models.Employee
	if err := db.First(&employee, input.EmployeeID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
	}

	roleOK := (input.WorkType == constants.WorkTypeCleaning && employee.Role == constants.EmployeeRoleCleaning) ||
		(input.WorkType == constants.WorkTypeRepair && employee.Role == constants.EmployeeRoleRepair)
	if !roleOK {
		return errors.NewAppError(errors.ErrCodeRoleMismatch,
			"Chức vụ nhân viên không phù hợp với loại công việc", nil)
	}

	free, err := IsRoomFreeOn(db, input.RoomID, input.WorkDate)
	if err != nil {
		return err
	}
	if !free {
		return errors.NewAppError(errors.ErrCodeScheduleConflict,
			"Phòng đang có khách đặt trong ngày này", nil)
	}

	day := DateOnly(input.WorkDate)

	var roomAssigned int64
	roomQuery := db.Model(&models.WorkScheduleDetail{}).
		Joins("JOIN work_schedules ON work_schedules.id = work_schedule_details.work_schedule_id").
		Where("work_schedule_details.room_id = ?", input.RoomID).
		Where("work_schedules.work_date = ?", day)
	if input.ScheduleID != 0 {
		roomQuery = roomQuery.Where("work_schedules.id <> ?", input.ScheduleID)
	}
	if err := roomQuery.Count(&roomAssigned).Error; err != nil {
		return err
	}
	if roomAssigned > 0 {
		return errors.NewAppError(errors.ErrCodeScheduleConflict,
			"Phòng đã có lịch làm việc trong ngày này", nil)
	}

	var staffBusy int64
	staffQuery := db.Model(&models.WorkSchedule{}).
		Where("employee_id = ?", input.EmployeeID).
		Where("work_date = ?", day)
	if input.ScheduleID != 0 {
		staffQuery = staffQuery.Where("id <> ?", input.ScheduleID)
	}
	if err := staffQuery.Count(&staffBusy).Error; err != nil {
		return err
	}
	if staffBusy > 0 {
		return errors.NewAppError(errors.ErrCodeScheduleConflict,
			"Nhân viên đã có lịch làm việc trong ngày này", nil)
	}

	return nil
}

// CreateSchedule kiểm tra xung đột rồi ghi lịch + chi tiết trong một transaction
func CreateSchedule(db *gorm.DB, input ScheduleInput) (*models.WorkSchedule, error) {
	var schedule models.WorkSchedule

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := CheckAssignment(tx, input); err != nil {
			return err
		}

		schedule = models.WorkSchedule{
			EmployeeID: input.EmployeeID,
			WorkDate:   DateOnly(input.WorkDate),
			WorkType:   input.WorkType,
		}
		if err := tx.Create(&schedule).Error; err != nil {
			return err
		}

		detail := models.WorkScheduleDetail{
			WorkScheduleID: schedule.ID,
			RoomID:         input.RoomID,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return err
		}

		schedule.Detail = detail
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// UpdateSchedule sửa lịch đã có, kiểm tra lại xung đột với chính nó được loại trừ
func UpdateSchedule(db *gorm.DB, input ScheduleInput, done *bool) (*models.WorkSchedule, error) {
	var schedule models.WorkSchedule

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Detail").First(&schedule, input.ScheduleID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy lịch làm việc", err)
		}

		if err := CheckAssignment(tx, input); err != nil {
			return err
		}

		schedule.EmployeeID = input.EmployeeID
		schedule.WorkDate = DateOnly(input.WorkDate)
		schedule.WorkType = input.WorkType
		if done != nil {
			schedule.Done = *done
		}
		if err := tx.Save(&schedule).Error; err != nil {
			return err
		}

		if schedule.Detail.RoomID != input.RoomID {
			schedule.Detail.RoomID = input.RoomID
			if err := tx.Save(&schedule.Detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}
