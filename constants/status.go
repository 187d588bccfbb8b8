package constants

// Trạng thái đặt phòng
const (
	BookingStatusPending         = "ChoXacNhan"
	BookingStatusCheckedIn       = "DaNhanPhong"
	BookingStatusCheckedOut      = "DaTraPhong"
	BookingStatusCancelRequested = "YeuCauHuy"
	BookingStatusCancelled       = "DaHuy"
)

// Trạng thái hóa đơn
const (
	InvoiceStatusUnpaid       = "ChuaThanhToan"
	InvoiceStatusPaid         = "DaThanhToan"
	InvoiceStatusRefundedNone = "KhongHoanTien"
	InvoiceStatusRefundedFull = "DaHoanTien"
)

// Phương thức thanh toán
const (
	PaymentMethodCash = "TienMat"
	PaymentMethodMomo = "ChuyenKhoanMomo"
)

// Trạng thái phòng
const (
	RoomStatusAvailable = "ConTrong"
	RoomStatusReserved  = "DaDat"
	RoomStatusCleaning  = "DangDonDep"
	RoomStatusRepair    = "DangSuaChua"
)

// Trạng thái voucher
const (
	VoucherStatusActive  = "HoatDong"
	VoucherStatusExpired = "HetHan"
)

// Loại công việc của lịch làm việc
const (
	WorkTypeCleaning = "DonDep"
	WorkTypeRepair   = "SuaChua"
)

// Chức vụ nhân viên
const (
	EmployeeRoleCleaning     = "DonDep"
	EmployeeRoleRepair       = "SuaChua"
	EmployeeRoleReceptionist = "LeTan"
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleCustomer   = 0
	RoleSuperAdmin = 1
	RoleAdmin      = 2
)
