package postgres

import (
	"context"
	"errors"

	expenseDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/expense"
	"github.com/frahmantamala/hr-management/internal/expense"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpenseRepository implements expense.RepositoryAPI using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.RepositoryAPI {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expenseDatamodel.Expense) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*expenseDatamodel.Expense, error) {
	var e expenseDatamodel.Expense
	err := r.db.WithContext(ctx).Preload("Employee").Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) List(ctx context.Context, status string, limit, offset int) ([]*expenseDatamodel.Expense, error) {
	query := r.db.WithContext(ctx).Preload("Employee")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var expenses []*expenseDatamodel.Expense
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) UpdateDecision(ctx context.Context, e *expenseDatamodel.Expense) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&expenseDatamodel.Expense{}).
		Where("id = ? AND status = ?", e.ID, expenseDatamodel.StatusPending).
		Updates(map[string]interface{}{
			"status":           e.Status,
			"approved_by":      e.ApprovedBy,
			"approved_at":      e.ApprovedAt,
			"rejection_reason": e.RejectionReason,
			"updated_at":       e.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&expenseDatamodel.Expense{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ExpenseRepository) TotalsByStatus(ctx context.Context, employeeID *int64) ([]expense.StatusTotal, error) {
	query := r.db.WithContext(ctx).
		Model(&expenseDatamodel.Expense{}).
		Select("status, COALESCE(SUM(amount), 0) AS amount, COUNT(*) AS count").
		Group("status")
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}

	var totals []expense.StatusTotal
	if err := query.Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
