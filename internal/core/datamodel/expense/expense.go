package expense

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
)

const (
	StatusPending  = "Bekliyor"
	StatusApproved = "Onaylandı"
	StatusRejected = "Reddedildi"
)

type Expense struct {
	ID              int64                       `gorm:"primaryKey"`
	EmployeeID      int64                       `gorm:"column:employee_id;index;not null"`
	Employee        *employeeDatamodel.Employee `gorm:"foreignKey:EmployeeID"`
	ExpenseType     string                      `gorm:"column:expense_type;not null"`
	Amount          float64                     `gorm:"column:amount;not null"`
	Date            string                      `gorm:"column:date;type:varchar(10);not null"`
	Description     string                      `gorm:"column:description;not null"`
	ReceiptURL      *string                     `gorm:"column:receipt_url"`
	Status          string                      `gorm:"column:status;index;not null"`
	ApprovedBy      *int64                      `gorm:"column:approved_by"`
	ApprovedAt      *time.Time                  `gorm:"column:approved_at"`
	RejectionReason *string                     `gorm:"column:rejection_reason"`
	CreatedAt       time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Expense) TableName() string {
	return "expenses"
}
