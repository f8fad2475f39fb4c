package leave

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/transport"
)

type ServiceAPI interface {
	CreateLeave(ctx context.Context, caller *internal.User, dto CreateLeaveDTO) (*Leave, error)
	ListLeaves(ctx context.Context, status string, limit, offset int) ([]*Leave, error)
	GetLeave(ctx context.Context, id int64) (*Leave, error)
	ApproveLeave(ctx context.Context, id, approverID int64) (*Leave, error)
	RejectLeave(ctx context.Context, id, approverID int64, reason *string) (*Leave, error)
	DeleteLeave(ctx context.Context, id int64) error
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

// ListLeaves handles GET /api/leaves?status=
func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	limit, offset := h.ParsePagination(r)
	status := r.URL.Query().Get("status")

	leaves, err := h.Service.ListLeaves(r.Context(), status, limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, leaves)
}

// CreateLeave handles POST /api/leaves
func (h *Handler) CreateLeave(w http.ResponseWriter, r *http.Request) {
	user, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}

	var dto CreateLeaveDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	l, err := h.Service.CreateLeave(r.Context(), user, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, l)
}

// GetLeave handles GET /api/leaves/{id}
func (h *Handler) GetLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	l, err := h.Service.GetLeave(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, l)
}

// ApproveLeave handles PUT /api/leaves/{id}/approve
func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	user, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	l, err := h.Service.ApproveLeave(r.Context(), id, user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DecisionResponse{
		Message: "İzin talebi onaylandı",
		LeaveID: l.ID,
		Status:  l.Status,
	})
}

// RejectLeave handles PUT /api/leaves/{id}/reject. The body is optional.
func (h *Handler) RejectLeave(w http.ResponseWriter, r *http.Request) {
	user, ok := h.CurrentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	var dto RejectLeaveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		h.Logger.Warn("invalid reject body", "error", err, "leave_id", id)
		h.WriteAppError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed))
		return
	}

	l, err := h.Service.RejectLeave(r.Context(), id, user.ID, dto.Reason)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DecisionResponse{
		Message: "İzin talebi reddedildi",
		LeaveID: l.ID,
		Status:  l.Status,
	})
}

// DeleteLeave handles DELETE /api/leaves/{id}
func (h *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteLeave(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{
		Message: "İzin talebi silindi",
		LeaveID: id,
	})
}
