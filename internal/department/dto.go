package department

import (
	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

type CreateDepartmentDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (dto CreateDepartmentDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MinLength(2).MaxLength(50)
	if dto.Description != nil {
		v.Field("description", *dto.Description).MaxLength(200)
	}
	return v.Validate()
}

type DepartmentsResponse struct {
	Departments []*Department `json:"departments"`
}
