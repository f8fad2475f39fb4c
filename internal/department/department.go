package department

import (
	"strings"
	"time"

	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
)

type Department struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	EmployeeCount int       `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewDepartment(dto CreateDepartmentDTO) *Department {
	d := &Department{
		Name:      strings.TrimSpace(dto.Name),
		CreatedAt: time.Now(),
	}
	if dto.Description != nil {
		desc := strings.TrimSpace(*dto.Description)
		d.Description = &desc
	}
	return d
}

func ToDataModel(d *Department) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}
