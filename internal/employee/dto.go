package employee

import (
	"strings"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

type CreateEmployeeDTO struct {
	UserID           int64    `json:"user_id"`
	DepartmentID     *int64   `json:"department_id,omitempty"`
	FullName         string   `json:"full_name"`
	Title            string   `json:"title"`
	Email            string   `json:"email"`
	Phone            *string  `json:"phone,omitempty"`
	AvatarURL        *string  `json:"avatar_url,omitempty"`
	StartDate        string   `json:"start_date"`
	Address          *string  `json:"address,omitempty"`
	BirthDate        *string  `json:"birth_date,omitempty"`
	EmergencyContact *string  `json:"emergency_contact,omitempty"`
	Salary           *float64 `json:"salary,omitempty"`
	AnnualLeaveTotal *int     `json:"annual_leave_total,omitempty"`
	SickLeaveTotal   *int     `json:"sick_leave_total,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("user_id", dto.UserID).Required()
	v.Field("full_name", dto.FullName).Required().MinLength(2).MaxLength(100)
	v.Field("title", dto.Title).Required().MaxLength(100)
	v.Field("email", dto.Email).Required().Custom(emailFormat("email"))
	v.Field("start_date", dto.StartDate).Required().Date()
	v.Field("birth_date", dto.BirthDate).Date()
	v.Field("salary", dto.Salary).NonNegative()
	v.Field("annual_leave_total", dto.AnnualLeaveTotal).NonNegative()
	v.Field("sick_leave_total", dto.SickLeaveTotal).NonNegative()
	return v.Validate()
}

// UpdateEmployeeDTO is a partial update; nil fields are left unchanged.
type UpdateEmployeeDTO struct {
	DepartmentID     *int64   `json:"department_id,omitempty"`
	FullName         *string  `json:"full_name,omitempty"`
	Title            *string  `json:"title,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	AvatarURL        *string  `json:"avatar_url,omitempty"`
	IsOnLeave        *bool    `json:"is_on_leave,omitempty"`
	Address          *string  `json:"address,omitempty"`
	BirthDate        *string  `json:"birth_date,omitempty"`
	EmergencyContact *string  `json:"emergency_contact,omitempty"`
	Salary           *float64 `json:"salary,omitempty"`
	AnnualLeaveTotal *int     `json:"annual_leave_total,omitempty"`
	SickLeaveTotal   *int     `json:"sick_leave_total,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	if dto.FullName != nil {
		v.Field("full_name", *dto.FullName).Required().MinLength(2).MaxLength(100)
	}
	if dto.Title != nil {
		v.Field("title", *dto.Title).Required().MaxLength(100)
	}
	v.Field("birth_date", dto.BirthDate).Date()
	v.Field("salary", dto.Salary).NonNegative()
	v.Field("annual_leave_total", dto.AnnualLeaveTotal).NonNegative()
	v.Field("sick_leave_total", dto.SickLeaveTotal).NonNegative()
	return v.Validate()
}

func (dto UpdateEmployeeDTO) Apply(e *Employee) {
	if dto.DepartmentID != nil {
		e.DepartmentID = dto.DepartmentID
	}
	if dto.FullName != nil {
		e.FullName = strings.TrimSpace(*dto.FullName)
	}
	if dto.Title != nil {
		e.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.Phone != nil {
		e.Phone = dto.Phone
	}
	if dto.AvatarURL != nil {
		e.AvatarURL = dto.AvatarURL
	}
	if dto.IsOnLeave != nil {
		e.IsOnLeave = *dto.IsOnLeave
	}
	if dto.Address != nil {
		e.Address = dto.Address
	}
	if dto.BirthDate != nil {
		e.BirthDate = dto.BirthDate
	}
	if dto.EmergencyContact != nil {
		e.EmergencyContact = dto.EmergencyContact
	}
	if dto.Salary != nil {
		e.Salary = dto.Salary
	}
	if dto.AnnualLeaveTotal != nil {
		e.AnnualLeaveTotal = *dto.AnnualLeaveTotal
	}
	if dto.SickLeaveTotal != nil {
		e.SickLeaveTotal = *dto.SickLeaveTotal
	}
}

func emailFormat(field string) func(interface{}) *internal.AppError {
	return func(value interface{}) *internal.AppError {
		s, _ := value.(string)
		at := strings.Index(s, "@")
		if at < 1 || at == len(s)-1 || strings.Contains(s[at+1:], "@") {
			return internal.NewValidationFieldError(field, field+" must be a valid email address", internal.ErrCodeValidationFailed)
		}
		return nil
	}
}
