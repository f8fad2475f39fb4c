package expense

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/transport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ServiceAPI interface {
	CreateExpense(ctx context.Context, caller *internal.User, dto CreateExpenseDTO) (*Expense, error)
	ListExpenses(ctx context.Context, status string, limit, offset int) ([]*Expense, error)
	GetExpense(ctx context.Context, id int64) (*Expense, error)
	ApproveExpense(ctx context.Context, id, approverID int64) (*Expense, error)
	RejectExpense(ctx context.Context, id, approverID int64, reason *string) (*Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	GetSummary(ctx context.Context, employeeID *int64) (*Summary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(base *transport.BaseHandler, svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     svc,
	}
}

// ListExpenses handles GET /api/expenses?status=
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	limit, offset := h.ParsePagination(r)

	expenses, err := h.Service.ListExpenses(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, expenses)
}

// CreateExpense handles POST /api/expenses
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}

	var dto CreateExpenseDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	expense, err := h.Service.CreateExpense(r.Context(), user, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, expense)
}

// GetExpense handles GET /api/expenses/{id}
func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	expense, err := h.Service.GetExpense(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, expense)
}

// ApproveExpense handles PUT /api/expenses/{id}/approve
func (h *Handler) ApproveExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	expense, err := h.Service.ApproveExpense(r.Context(), id, user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DecisionResponse{
		Message:   "Masraf talebi onaylandı",
		ExpenseID: expense.ID,
		Status:    expense.Status,
	})
}

// RejectExpense handles PUT /api/expenses/{id}/reject. The body is optional.
func (h *Handler) RejectExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	var dto RejectExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		h.Logger.Warn("invalid reject body", "error", err, "expense_id", id)
		h.WriteAppError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	expense, err := h.Service.RejectExpense(r.Context(), id, user.ID, dto.Reason)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DecisionResponse{
		Message:   "Masraf talebi reddedildi",
		ExpenseID: expense.ID,
		Status:    expense.Status,
	})
}

// DeleteExpense handles DELETE /api/expenses/{id}
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteExpense(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{
		Message:   "Masraf talebi silindi",
		ExpenseID: id,
	})
}

// GetSummary handles GET /api/expenses/summary/stats?employee_id=
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	var employeeID *int64
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.WriteAppError(w, internal.NewValidationFieldError("employee_id", "invalid employee_id", internal.ErrCodeValidationFailed))
			return
		}
		employeeID = &id
	}

	summary, err := h.Service.GetSummary(r.Context(), employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

// ExportExpenses handles GET /api/expenses/export?status=
func (h *Handler) ExportExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.ListExpenses(r.Context(), r.URL.Query().Get("status"), transport.MaxLimit, 0)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, expenses); err != nil {
		h.HandleServiceError(w, fmt.Errorf("export expenses: %w", err))
		return
	}

	filename := fmt.Sprintf("masraflar-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Error("failed to write export", "error", err)
	}
}
