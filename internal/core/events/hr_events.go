package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeLeaveApproved   = "leave.approved"
	EventTypeLeaveRejected   = "leave.rejected"
	EventTypeExpenseApproved = "expense.approved"
	EventTypeExpenseRejected = "expense.rejected"
)

type LeaveApprovedEvent struct {
	BaseEvent
	LeaveID    int64  `json:"leave_id"`
	EmployeeID int64  `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Days       int    `json:"days"`
	ApprovedBy int64  `json:"approved_by"`
}

func NewLeaveApprovedEvent(leaveID, employeeID int64, leaveType string, days int, approvedBy int64) *LeaveApprovedEvent {
	return &LeaveApprovedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeLeaveApproved,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"leave_id":    leaveID,
				"employee_id": employeeID,
				"leave_type":  leaveType,
				"days":        days,
				"approved_by": approvedBy,
			},
		},
		LeaveID:    leaveID,
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		Days:       days,
		ApprovedBy: approvedBy,
	}
}

// RequestDecidedEvent covers rejections and expense approvals, which carry
// no payload beyond the decision itself.
type RequestDecidedEvent struct {
	BaseEvent
	RequestID  int64  `json:"request_id"`
	EmployeeID int64  `json:"employee_id"`
	DecidedBy  int64  `json:"decided_by"`
	Reason     string `json:"reason,omitempty"`
}

func NewRequestDecidedEvent(eventType string, requestID, employeeID, decidedBy int64, reason string) *RequestDecidedEvent {
	return &RequestDecidedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id":  requestID,
				"employee_id": employeeID,
				"decided_by":  decidedBy,
				"reason":      reason,
			},
		},
		RequestID:  requestID,
		EmployeeID: employeeID,
		DecidedBy:  decidedBy,
		Reason:     reason,
	}
}
