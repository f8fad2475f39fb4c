package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/frahmantamala/hr-management/internal"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	List(ctx context.Context, limit, offset int) ([]*employeeDatamodel.Employee, error)
	ListOnLeave(ctx context.Context) ([]*employeeDatamodel.Employee, error)
	GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error)
	GetByUserID(ctx context.Context, userID int64) (*employeeDatamodel.Employee, error)
	Create(ctx context.Context, employee *employeeDatamodel.Employee) error
	Update(ctx context.Context, employee *employeeDatamodel.Employee) error
	IncrementLeaveUsed(ctx context.Context, id int64, column string, days int) error
}

// UserLookup resolves the account an employee record is attached to.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*userDatamodel.User, error)
}

// DepartmentLookup returns nil, nil for an unknown department.
type DepartmentLookup interface {
	GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error)
}

type Service struct {
	repo        RepositoryAPI
	users       UserLookup
	departments DepartmentLookup
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, users UserLookup, departments DepartmentLookup, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		users:       users,
		departments: departments,
		logger:      logger,
	}
}

func (s *Service) ListEmployees(ctx context.Context, limit, offset int) ([]*Card, error) {
	rows, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return toCards(rows), nil
}

func (s *Service) ListOnLeave(ctx context.Context) ([]*Card, error) {
	rows, err := s.repo.ListOnLeave(ctx)
	if err != nil {
		s.logger.Error("failed to list employees on leave", "error", err)
		return nil, fmt.Errorf("list employees on leave: %w", err)
	}
	return toCards(rows), nil
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	if row == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return FromDataModel(row), nil
}

func (s *Service) GetEmployeeDetail(ctx context.Context, id int64) (*Detail, error) {
	e, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.ToDetail(), nil
}

// GetByUserID returns the employee record linked to a user account.
func (s *Service) GetByUserID(ctx context.Context, userID int64) (*Employee, error) {
	row, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get employee by user: %w", err)
	}
	if row == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return FromDataModel(row), nil
}

func (s *Service) GetLeaveBalance(ctx context.Context, employeeID int64) (*LeaveBalance, error) {
	e, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return e.Balance(), nil
}

func (s *Service) CreateEmployee(ctx context.Context, dto CreateEmployeeDTO) (*Detail, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, dto.UserID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserID(ctx, dto.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup employee: %w", err)
	}
	if existing != nil {
		return nil, internal.ErrEmployeeExists
	}

	if err := s.checkDepartment(ctx, dto.DepartmentID); err != nil {
		return nil, err
	}

	e := &Employee{
		UserID:           dto.UserID,
		DepartmentID:     dto.DepartmentID,
		FullName:         strings.TrimSpace(dto.FullName),
		Title:            strings.TrimSpace(dto.Title),
		Email:            strings.ToLower(strings.TrimSpace(dto.Email)),
		Phone:            dto.Phone,
		AvatarURL:        dto.AvatarURL,
		StartDate:        dto.StartDate,
		Address:          dto.Address,
		BirthDate:        dto.BirthDate,
		EmergencyContact: dto.EmergencyContact,
		Salary:           dto.Salary,
		AnnualLeaveTotal: DefaultAnnualLeave,
		SickLeaveTotal:   DefaultSickLeave,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if dto.AnnualLeaveTotal != nil {
		e.AnnualLeaveTotal = *dto.AnnualLeaveTotal
	}
	if dto.SickLeaveTotal != nil {
		e.SickLeaveTotal = *dto.SickLeaveTotal
	}

	row := ToDataModel(e)
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create employee", "user_id", dto.UserID, "error", err)
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.logger.Info("employee created", "employee_id", row.ID, "user_id", row.UserID)
	return s.GetEmployeeDetail(ctx, row.ID)
}

func (s *Service) UpdateEmployee(ctx context.Context, id int64, dto UpdateEmployeeDTO) (*Detail, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkDepartment(ctx, dto.DepartmentID); err != nil {
		return nil, err
	}

	dto.Apply(e)
	e.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, ToDataModel(e)); err != nil {
		s.logger.Error("failed to update employee", "employee_id", id, "error", err)
		return nil, fmt.Errorf("update employee: %w", err)
	}

	s.logger.Info("employee updated", "employee_id", id)
	return s.GetEmployeeDetail(ctx, id)
}

// ApplyApprovedLeave charges an approved leave against the matching
// allowance. Leave types without an allowance are ignored.
func (s *Service) ApplyApprovedLeave(ctx context.Context, employeeID int64, leaveType string, days int) error {
	column := LeaveCounter(leaveType)
	if column == "" {
		s.logger.Debug("leave type has no allowance", "leave_type", leaveType)
		return nil
	}

	if err := s.repo.IncrementLeaveUsed(ctx, employeeID, column, days); err != nil {
		return fmt.Errorf("update leave balance: %w", err)
	}

	s.logger.Info("leave balance updated",
		"employee_id", employeeID,
		"leave_type", leaveType,
		"days", days)
	return nil
}

func (s *Service) checkDepartment(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	d, err := s.departments.GetByID(ctx, *id)
	if err != nil {
		return fmt.Errorf("lookup department: %w", err)
	}
	if d == nil {
		return internal.ErrDepartmentNotFound
	}
	return nil
}

func toCards(rows []*employeeDatamodel.Employee) []*Card {
	cards := make([]*Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, FromDataModel(row).ToCard())
	}
	return cards
}
