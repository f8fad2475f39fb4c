package expense

import (
	"time"

	expenseDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/expense"
)

const (
	StatusPending  = expenseDatamodel.StatusPending
	StatusApproved = expenseDatamodel.StatusApproved
	StatusRejected = expenseDatamodel.StatusRejected
)

type Expense struct {
	ID              int64      `json:"id"`
	EmployeeID      int64      `json:"employee_id"`
	EmployeeName    string     `json:"employee_name"`
	ExpenseType     string     `json:"expense_type"`
	Amount          float64    `json:"amount"`
	Date            string     `json:"date"`
	Description     string     `json:"description"`
	ReceiptURL      *string    `json:"receipt_url"`
	Status          string     `json:"status"`
	ApprovedBy      *int64     `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectionReason *string    `json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (e *Expense) CanBeDecided() bool {
	return e.Status == StatusPending
}

func (e *Expense) Approve(by int64, at time.Time) {
	e.Status = StatusApproved
	e.ApprovedBy = &by
	e.ApprovedAt = &at
	e.UpdatedAt = at
}

func (e *Expense) Reject(by int64, at time.Time, reason *string) {
	e.Status = StatusRejected
	e.ApprovedBy = &by
	e.ApprovedAt = &at
	e.RejectionReason = reason
	e.UpdatedAt = at
}

// Summary aggregates amounts and counts per status.
type Summary struct {
	TotalAmount    float64 `json:"total_amount"`
	PendingAmount  float64 `json:"pending_amount"`
	ApprovedAmount float64 `json:"approved_amount"`
	RejectedAmount float64 `json:"rejected_amount"`
	TotalCount     int     `json:"total_count"`
	PendingCount   int     `json:"pending_count"`
	ApprovedCount  int     `json:"approved_count"`
	RejectedCount  int     `json:"rejected_count"`
}

// StatusTotal is one row of a per-status aggregate.
type StatusTotal struct {
	Status string
	Amount float64
	Count  int
}

func NewSummary(totals []StatusTotal) *Summary {
	s := &Summary{}
	for _, t := range totals {
		s.TotalAmount += t.Amount
		s.TotalCount += t.Count
		switch t.Status {
		case StatusPending:
			s.PendingAmount, s.PendingCount = t.Amount, t.Count
		case StatusApproved:
			s.ApprovedAmount, s.ApprovedCount = t.Amount, t.Count
		case StatusRejected:
			s.RejectedAmount, s.RejectedCount = t.Amount, t.Count
		}
	}
	return s
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	return &expenseDatamodel.Expense{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		ExpenseType:     e.ExpenseType,
		Amount:          e.Amount,
		Date:            e.Date,
		Description:     e.Description,
		ReceiptURL:      e.ReceiptURL,
		Status:          e.Status,
		ApprovedBy:      e.ApprovedBy,
		ApprovedAt:      e.ApprovedAt,
		RejectionReason: e.RejectionReason,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	out := &Expense{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		ExpenseType:     e.ExpenseType,
		Amount:          e.Amount,
		Date:            e.Date,
		Description:     e.Description,
		ReceiptURL:      e.ReceiptURL,
		Status:          e.Status,
		ApprovedBy:      e.ApprovedBy,
		ApprovedAt:      e.ApprovedAt,
		RejectionReason: e.RejectionReason,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.Employee != nil {
		out.EmployeeName = e.Employee.FullName
	}
	return out
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}
