package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
	leaveDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/leave"
	"github.com/frahmantamala/hr-management/internal/core/events"
	"github.com/frahmantamala/hr-management/internal/employee"
)

type RepositoryAPI interface {
	Create(ctx context.Context, leave *leaveDatamodel.Leave) error
	GetByID(ctx context.Context, id int64) (*leaveDatamodel.Leave, error)
	List(ctx context.Context, status string, limit, offset int) ([]*leaveDatamodel.Leave, error)
	// UpdateDecision persists the status and approver fields only while the
	// stored row is still pending. It reports whether a row was changed.
	UpdateDecision(ctx context.Context, leave *leaveDatamodel.Leave) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type EmployeeLookup interface {
	GetEmployee(ctx context.Context, id int64) (*employee.Employee, error)
	GetByUserID(ctx context.Context, userID int64) (*employee.Employee, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
	PublishSync(ctx context.Context, event events.Event) error
}

type Service struct {
	repo      RepositoryAPI
	employees EmployeeLookup
	publisher EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(repo RepositoryAPI, employees EmployeeLookup, publisher EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) CreateLeave(ctx context.Context, caller *internal.User, dto CreateLeaveDTO) (*Leave, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("leave validation failed", "error", err, "user_id", caller.ID)
		return nil, err
	}

	days, rangeErr := validation.InclusiveDays(dto.StartDate, dto.EndDate)
	if rangeErr != nil {
		return nil, rangeErr
	}

	emp, err := s.resolveEmployee(ctx, caller, dto.EmployeeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	l := &Leave{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		LeaveType:    dto.LeaveType,
		StartDate:    dto.StartDate,
		EndDate:      dto.EndDate,
		Days:         days,
		Reason:       strings.TrimSpace(dto.Reason),
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	row := ToDataModel(l)
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create leave", "error", err, "employee_id", emp.ID)
		return nil, fmt.Errorf("create leave: %w", err)
	}
	l.ID = row.ID

	s.logger.Info("leave created",
		"leave_id", l.ID,
		"employee_id", l.EmployeeID,
		"leave_type", l.LeaveType,
		"days", l.Days)

	return l, nil
}

// resolveEmployee uses the explicit employee id when given and falls back
// to the caller's own employee record.
func (s *Service) resolveEmployee(ctx context.Context, caller *internal.User, employeeID *int64) (*employee.Employee, error) {
	if employeeID != nil {
		return s.employees.GetEmployee(ctx, *employeeID)
	}

	emp, err := s.employees.GetByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, internal.ErrEmployeeNotFound) {
			return nil, internal.NewValidationFieldError("employee_id", "employee_id is required when the caller has no employee record", internal.ErrCodeValidationFailed)
		}
		return nil, err
	}
	return emp, nil
}

func (s *Service) ListLeaves(ctx context.Context, status string, limit, offset int) ([]*Leave, error) {
	rows, err := s.repo.List(ctx, status, limit, offset)
	if err != nil {
		s.logger.Error("failed to list leaves", "error", err, "status", status)
		return nil, fmt.Errorf("list leaves: %w", err)
	}

	leaves := make([]*Leave, 0, len(rows))
	for _, row := range rows {
		leaves = append(leaves, FromDataModel(row))
	}
	return leaves, nil
}

func (s *Service) GetLeave(ctx context.Context, id int64) (*Leave, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get leave: %w", err)
	}
	if row == nil {
		return nil, internal.ErrLeaveNotFound
	}
	return FromDataModel(row), nil
}

func (s *Service) ApproveLeave(ctx context.Context, id, approverID int64) (*Leave, error) {
	l, err := s.decide(ctx, id, approverID, StatusApproved, nil)
	if err != nil {
		return nil, err
	}

	event := events.NewLeaveApprovedEvent(l.ID, l.EmployeeID, l.LeaveType, l.Days, approverID)
	if err := s.publisher.PublishSync(ctx, event); err != nil {
		s.logger.Error("failed to apply approved leave", "error", err, "leave_id", l.ID)
		return nil, fmt.Errorf("publish leave approved: %w", err)
	}

	s.logger.Info("leave approved",
		"leave_id", l.ID,
		"employee_id", l.EmployeeID,
		"approved_by", approverID)
	return l, nil
}

func (s *Service) RejectLeave(ctx context.Context, id, approverID int64, reason *string) (*Leave, error) {
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		reason = &trimmed
		if trimmed == "" {
			reason = nil
		}
	}

	l, err := s.decide(ctx, id, approverID, StatusRejected, reason)
	if err != nil {
		return nil, err
	}

	var text string
	if reason != nil {
		text = *reason
	}
	event := events.NewRequestDecidedEvent(events.EventTypeLeaveRejected, l.ID, l.EmployeeID, approverID, text)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish leave rejected event", "error", err, "leave_id", l.ID)
	}

	s.logger.Info("leave rejected",
		"leave_id", l.ID,
		"employee_id", l.EmployeeID,
		"approved_by", approverID,
		"reason", text)
	return l, nil
}

func (s *Service) decide(ctx context.Context, id, approverID int64, status string, reason *string) (*Leave, error) {
	l, err := s.GetLeave(ctx, id)
	if err != nil {
		return nil, err
	}

	if !l.IsPending() {
		s.logger.Warn("cannot decide leave in current status",
			"leave_id", id,
			"current_status", l.Status,
			"requested_status", status)
		return nil, internal.ErrInvalidStatus
	}

	decidedAt := s.now()
	l.Status = status
	l.ApprovedBy = &approverID
	l.ApprovedAt = &decidedAt
	l.RejectionReason = reason
	l.UpdatedAt = decidedAt

	updated, err := s.repo.UpdateDecision(ctx, ToDataModel(l))
	if err != nil {
		s.logger.Error("failed to update leave status", "error", err, "leave_id", id)
		return nil, fmt.Errorf("update leave: %w", err)
	}
	if !updated {
		return nil, internal.ErrInvalidStatus
	}
	return l, nil
}

func (s *Service) DeleteLeave(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete leave", "error", err, "leave_id", id)
		return fmt.Errorf("delete leave: %w", err)
	}
	if !deleted {
		return internal.ErrLeaveNotFound
	}

	s.logger.Info("leave deleted", "leave_id", id)
	return nil
}
