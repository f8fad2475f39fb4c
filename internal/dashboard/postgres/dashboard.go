package postgres

import (
	"context"
	"fmt"

	expenseDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/expense"
	leaveDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/leave"
	"github.com/frahmantamala/hr-management/internal/dashboard"
	"github.com/jmoiron/sqlx"
)

type pgRepo struct {
	db *sqlx.DB
}

// NewDashboardRepository runs plain SQL through sqlx. Queries are written
// with ? placeholders and rebound for the driver the handle was opened with.
func NewDashboardRepository(db *sqlx.DB) dashboard.RepositoryAPI {
	return &pgRepo{db: db}
}

func (p *pgRepo) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := p.db.GetContext(ctx, &n, p.db.Rebind(query), args...); err != nil {
		return 0, err
	}
	return n, nil
}

func (p *pgRepo) CountEmployees(ctx context.Context) (int, error) {
	n, err := p.count(ctx, `SELECT COUNT(*) FROM employees`)
	if err != nil {
		return 0, fmt.Errorf("count employees query: %w", err)
	}
	return n, nil
}

// CountOnLeave counts employees flagged as on leave or covered by an
// approved leave that includes day.
func (p *pgRepo) CountOnLeave(ctx context.Context, day string) (int, error) {
	query := `
SELECT COUNT(*) FROM employees e
WHERE e.is_on_leave = ?
   OR EXISTS (
     SELECT 1 FROM leaves l
     WHERE l.employee_id = e.id
       AND l.status = ?
       AND l.start_date <= ?
       AND l.end_date >= ?
   )
`
	n, err := p.count(ctx, query, true, leaveDatamodel.StatusApproved, day, day)
	if err != nil {
		return 0, fmt.Errorf("count on leave query: %w", err)
	}
	return n, nil
}

func (p *pgRepo) CountPendingRequests(ctx context.Context) (int, error) {
	query := `
SELECT
  (SELECT COUNT(*) FROM leaves WHERE status = ?) +
  (SELECT COUNT(*) FROM expenses WHERE status = ?)
`
	n, err := p.count(ctx, query, leaveDatamodel.StatusPending, expenseDatamodel.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("count pending query: %w", err)
	}
	return n, nil
}

func (p *pgRepo) CountBirthdaysInMonth(ctx context.Context, month string) (int, error) {
	query := `SELECT COUNT(*) FROM employees WHERE birth_date IS NOT NULL AND SUBSTR(birth_date, 6, 2) = ?`
	n, err := p.count(ctx, query, month)
	if err != nil {
		return 0, fmt.Errorf("count birthdays query: %w", err)
	}
	return n, nil
}
