package employee

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hr-management/internal/transport"
)

type ServiceAPI interface {
	ListEmployees(ctx context.Context, limit, offset int) ([]*Card, error)
	ListOnLeave(ctx context.Context) ([]*Card, error)
	GetEmployeeDetail(ctx context.Context, id int64) (*Detail, error)
	GetLeaveBalance(ctx context.Context, employeeID int64) (*LeaveBalance, error)
	CreateEmployee(ctx context.Context, dto CreateEmployeeDTO) (*Detail, error)
	UpdateEmployee(ctx context.Context, id int64, dto UpdateEmployeeDTO) (*Detail, error)
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

// ListEmployees handles GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	limit, offset := h.ParsePagination(r)

	cards, err := h.Service.ListEmployees(r.Context(), limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, cards)
}

// ListOnLeave handles GET /api/employees/on-leave
func (h *Handler) ListOnLeave(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Service.ListOnLeave(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, cards)
}

// GetEmployee handles GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.Service.GetEmployeeDetail(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, detail)
}

// CreateEmployee handles POST /api/employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	detail, err := h.Service.CreateEmployee(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, detail)
}

// UpdateEmployee handles PUT /api/employees/{id}
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	var dto UpdateEmployeeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	detail, err := h.Service.UpdateEmployee(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, detail)
}

// GetLeaveBalance handles GET /api/leaves/balance/{employee_id}
func (h *Handler) GetLeaveBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseIDParam(w, r, "employee_id")
	if !ok {
		return
	}

	balance, err := h.Service.GetLeaveBalance(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, balance)
}
