package department

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/hr-management/internal"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
)

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*departmentDatamodel.Department, error)
	GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error)
	GetByName(ctx context.Context, name string) (*departmentDatamodel.Department, error)
	Create(ctx context.Context, department *departmentDatamodel.Department) error
	CountEmployees(ctx context.Context) (map[int64]int, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllDepartments(ctx context.Context) ([]*Department, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get departments from repository", "error", err)
		return nil, fmt.Errorf("get departments: %w", err)
	}

	counts, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("count department employees: %w", err)
	}

	departments := make([]*Department, 0, len(rows))
	for _, row := range rows {
		d := FromDataModel(row)
		d.EmployeeCount = counts[d.ID]
		departments = append(departments, d)
	}

	s.logger.Info("retrieved departments", "count", len(departments))
	return departments, nil
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, internal.ErrDepartmentNotFound
	}

	counts, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("count department employees: %w", err)
	}

	d := FromDataModel(row)
	d.EmployeeCount = counts[d.ID]
	return d, nil
}

func (s *Service) CreateDepartment(ctx context.Context, dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d := NewDepartment(dto)
	existing, err := s.repo.GetByName(ctx, d.Name)
	if err != nil {
		return nil, fmt.Errorf("lookup department: %w", err)
	}
	if existing != nil {
		return nil, internal.ErrDepartmentExists
	}

	row := ToDataModel(d)
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create department", "name", d.Name, "error", err)
		return nil, fmt.Errorf("create department: %w", err)
	}

	s.logger.Info("department created", "department_id", row.ID, "name", row.Name)
	return FromDataModel(row), nil
}
