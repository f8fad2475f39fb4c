package leave

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
)

const (
	StatusPending  = "Bekliyor"
	StatusApproved = "Onaylandı"
	StatusRejected = "Reddedildi"
)

const (
	TypeAnnual = "Yıllık İzin"
	TypeSick   = "Hastalık İzni"
	TypeExcuse = "Mazeret İzni"
	TypeUnpaid = "Ücretsiz İzin"
)

type Leave struct {
	ID              int64                       `gorm:"primaryKey"`
	EmployeeID      int64                       `gorm:"column:employee_id;index;not null"`
	Employee        *employeeDatamodel.Employee `gorm:"foreignKey:EmployeeID"`
	LeaveType       string                      `gorm:"column:leave_type;not null"`
	StartDate       string                      `gorm:"column:start_date;type:varchar(10);not null"`
	EndDate         string                      `gorm:"column:end_date;type:varchar(10);not null"`
	Days            int                         `gorm:"column:days;not null"`
	Reason          string                      `gorm:"column:reason;not null"`
	Status          string                      `gorm:"column:status;index;not null"`
	ApprovedBy      *int64                      `gorm:"column:approved_by"`
	ApprovedAt      *time.Time                  `gorm:"column:approved_at"`
	RejectionReason *string                     `gorm:"column:rejection_reason"`
	CreatedAt       time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Leave) TableName() string {
	return "leaves"
}
