package leave

import (
	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

type CreateLeaveDTO struct {
	EmployeeID *int64 `json:"employee_id,omitempty"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (dto CreateLeaveDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("leave_type", dto.LeaveType).Required().OneOf(Types...)
	v.Field("start_date", dto.StartDate).Required().Date()
	v.Field("end_date", dto.EndDate).Required().Date()
	v.Field("reason", dto.Reason).Required().MinLength(5).MaxLength(500)
	return v.Validate()
}

type RejectLeaveDTO struct {
	Reason *string `json:"reason,omitempty"`
}

type DecisionResponse struct {
	Message string `json:"message"`
	LeaveID int64  `json:"leave_id"`
	Status  string `json:"status"`
}

type DeleteResponse struct {
	Message string `json:"message"`
	LeaveID int64  `json:"leave_id"`
}
