package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/hr-management/internal/core/events"
)

type EventHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewEventHandler(service *Service, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger,
	}
}

func (h *EventHandler) HandleLeaveApproved(ctx context.Context, event events.Event) error {
	leaveEvent, ok := event.(*events.LeaveApprovedEvent)
	if !ok {
		h.logger.Error("invalid event type for leave approved handler", "event_type", event.EventType())
		return fmt.Errorf("expected LeaveApprovedEvent, got %T", event)
	}

	h.logger.Info("handling leave approved event",
		"leave_id", leaveEvent.LeaveID,
		"employee_id", leaveEvent.EmployeeID,
		"leave_type", leaveEvent.LeaveType,
		"event_id", leaveEvent.EventID())

	if err := h.service.ApplyApprovedLeave(ctx, leaveEvent.EmployeeID, leaveEvent.LeaveType, leaveEvent.Days); err != nil {
		h.logger.Error("failed to apply approved leave",
			"error", err,
			"leave_id", leaveEvent.LeaveID,
			"event_id", leaveEvent.EventID())
		return fmt.Errorf("leave balance update failed for leave %d: %w", leaveEvent.LeaveID, err)
	}

	return nil
}

func (h *EventHandler) RegisterEventHandlers(eventBus *events.EventBus) {
	eventBus.Subscribe(events.EventTypeLeaveApproved, h.HandleLeaveApproved)

	h.logger.Info("employee event handlers registered",
		"handlers", []string{events.EventTypeLeaveApproved})
}
