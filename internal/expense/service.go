package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/frahmantamala/hr-management/internal"
	expenseDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/expense"
	"github.com/frahmantamala/hr-management/internal/core/events"
	"github.com/frahmantamala/hr-management/internal/employee"
)

type RepositoryAPI interface {
	Create(ctx context.Context, expense *expenseDatamodel.Expense) error
	GetByID(ctx context.Context, id int64) (*expenseDatamodel.Expense, error)
	List(ctx context.Context, status string, limit, offset int) ([]*expenseDatamodel.Expense, error)
	// UpdateDecision only changes rows that are still pending.
	UpdateDecision(ctx context.Context, expense *expenseDatamodel.Expense) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// TotalsByStatus sums amounts per status, optionally for one employee.
	TotalsByStatus(ctx context.Context, employeeID *int64) ([]StatusTotal, error)
}

type EmployeeLookup interface {
	GetEmployee(ctx context.Context, id int64) (*employee.Employee, error)
	GetByUserID(ctx context.Context, userID int64) (*employee.Employee, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
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

func (s *Service) CreateExpense(ctx context.Context, caller *internal.User, dto CreateExpenseDTO) (*Expense, error) {
	now := s.now()
	if err := dto.Validate(now); err != nil {
		s.logger.Warn("expense validation failed", "error", err, "user_id", caller.ID)
		return nil, err
	}

	emp, err := s.resolveEmployee(ctx, caller, dto.EmployeeID)
	if err != nil {
		return nil, err
	}

	e := &Expense{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		ExpenseType:  strings.TrimSpace(dto.ExpenseType),
		Amount:       dto.Amount,
		Date:         dto.Date,
		Description:  strings.TrimSpace(dto.Description),
		ReceiptURL:   dto.ReceiptURL,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	row := ToDataModel(e)
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create expense", "error", err, "employee_id", emp.ID)
		return nil, fmt.Errorf("create expense: %w", err)
	}
	e.ID = row.ID

	s.logger.Info("expense created successfully",
		"expense_id", e.ID,
		"employee_id", e.EmployeeID,
		"amount", e.Amount,
		"expense_type", e.ExpenseType)

	return e, nil
}

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

func (s *Service) ListExpenses(ctx context.Context, status string, limit, offset int) ([]*Expense, error) {
	rows, err := s.repo.List(ctx, status, limit, offset)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "status", status)
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetExpense(ctx context.Context, id int64) (*Expense, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get expense: %w", err)
	}
	if row == nil {
		return nil, internal.ErrExpenseNotFound
	}
	return FromDataModel(row), nil
}

func (s *Service) ApproveExpense(ctx context.Context, id, approverID int64) (*Expense, error) {
	e, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if !e.CanBeDecided() {
		s.logger.Warn("cannot approve expense in current status",
			"expense_id", id,
			"current_status", e.Status)
		return nil, internal.ErrInvalidStatus
	}

	e.Approve(approverID, s.now())
	if err := s.saveDecision(ctx, e); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewRequestDecidedEvent(events.EventTypeExpenseApproved, e.ID, e.EmployeeID, approverID, ""))

	s.logger.Info("expense approved successfully",
		"expense_id", id,
		"approved_by", approverID,
		"amount", e.Amount)
	return e, nil
}

func (s *Service) RejectExpense(ctx context.Context, id, approverID int64, reason *string) (*Expense, error) {
	e, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if !e.CanBeDecided() {
		s.logger.Warn("cannot reject expense in current status",
			"expense_id", id,
			"current_status", e.Status)
		return nil, internal.ErrInvalidStatus
	}

	var text string
	if reason != nil {
		text = strings.TrimSpace(*reason)
		reason = &text
		if text == "" {
			reason = nil
		}
	}

	e.Reject(approverID, s.now(), reason)
	if err := s.saveDecision(ctx, e); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewRequestDecidedEvent(events.EventTypeExpenseRejected, e.ID, e.EmployeeID, approverID, text))

	s.logger.Info("expense rejected successfully",
		"expense_id", id,
		"approved_by", approverID,
		"reason", text,
		"amount", e.Amount)
	return e, nil
}

func (s *Service) saveDecision(ctx context.Context, e *Expense) error {
	updated, err := s.repo.UpdateDecision(ctx, ToDataModel(e))
	if err != nil {
		s.logger.Error("failed to update expense status", "error", err, "expense_id", e.ID)
		return fmt.Errorf("update expense: %w", err)
	}
	if !updated {
		return internal.ErrInvalidStatus
	}
	return nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "error", err, "event_type", event.EventType())
	}
}

func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return fmt.Errorf("delete expense: %w", err)
	}
	if !deleted {
		return internal.ErrExpenseNotFound
	}

	s.logger.Info("expense deleted", "expense_id", id)
	return nil
}

// GetSummary aggregates all expenses, or one employee's when employeeID is set.
func (s *Service) GetSummary(ctx context.Context, employeeID *int64) (*Summary, error) {
	totals, err := s.repo.TotalsByStatus(ctx, employeeID)
	if err != nil {
		s.logger.Error("failed to aggregate expenses", "error", err)
		return nil, fmt.Errorf("expense summary: %w", err)
	}
	return NewSummary(totals), nil
}
