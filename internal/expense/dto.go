package expense

import (
	"time"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

type CreateExpenseDTO struct {
	EmployeeID  *int64  `json:"employee_id,omitempty"`
	ExpenseType string  `json:"expense_type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	ReceiptURL  *string `json:"receipt_url,omitempty"`
}

// Validate checks the payload against the calendar day of today.
func (dto CreateExpenseDTO) Validate(today time.Time) *internal.AppError {
	v := validation.NewValidator()
	v.Field("expense_type", dto.ExpenseType).Required().MaxLength(50)
	v.Field("amount", dto.Amount).Positive(internal.ErrCodeInvalidAmount)
	v.Field("date", dto.Date).Required().Date().NotAfter(today)
	v.Field("description", dto.Description).Required().MaxLength(500)
	return v.Validate()
}

type RejectExpenseDTO struct {
	Reason *string `json:"reason,omitempty"`
}

type DecisionResponse struct {
	Message   string `json:"message"`
	ExpenseID int64  `json:"expense_id"`
	Status    string `json:"status"`
}

type DeleteResponse struct {
	Message   string `json:"message"`
	ExpenseID int64  `json:"expense_id"`
}
