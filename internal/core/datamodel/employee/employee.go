package employee

import (
	"time"

	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
)

// Employee dates are stored as YYYY-MM-DD strings.
type Employee struct {
	ID               int64                           `gorm:"primaryKey"`
	UserID           int64                           `gorm:"column:user_id;uniqueIndex;not null"`
	DepartmentID     *int64                          `gorm:"column:department_id;index"`
	Department       *departmentDatamodel.Department `gorm:"foreignKey:DepartmentID"`
	FullName         string                          `gorm:"column:full_name;not null"`
	Title            string                          `gorm:"column:title;not null"`
	Email            string                          `gorm:"column:email;uniqueIndex;not null"`
	Phone            *string                         `gorm:"column:phone"`
	AvatarURL        *string                         `gorm:"column:avatar_url"`
	StartDate        string                          `gorm:"column:start_date;type:varchar(10);not null"`
	IsOnLeave        bool                            `gorm:"column:is_on_leave;not null"`
	Address          *string                         `gorm:"column:address"`
	BirthDate        *string                         `gorm:"column:birth_date;type:varchar(10)"`
	EmergencyContact *string                         `gorm:"column:emergency_contact"`
	Salary           *float64                        `gorm:"column:salary"`
	AnnualLeaveTotal int                             `gorm:"column:annual_leave_total;not null"`
	AnnualLeaveUsed  int                             `gorm:"column:annual_leave_used;not null"`
	SickLeaveTotal   int                             `gorm:"column:sick_leave_total;not null"`
	SickLeaveUsed    int                             `gorm:"column:sick_leave_used;not null"`
	CreatedAt        time.Time                       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time                       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
