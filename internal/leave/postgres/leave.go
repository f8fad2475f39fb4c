package postgres

import (
	"context"
	"errors"

	leaveDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/leave"
	"github.com/frahmantamala/hr-management/internal/leave"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.RepositoryAPI {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(ctx context.Context, l *leaveDatamodel.Leave) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *LeaveRepository) GetByID(ctx context.Context, id int64) (*leaveDatamodel.Leave, error) {
	var l leaveDatamodel.Leave
	err := r.db.WithContext(ctx).Preload("Employee").Where("id = ?", id).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *LeaveRepository) List(ctx context.Context, status string, limit, offset int) ([]*leaveDatamodel.Leave, error) {
	query := r.db.WithContext(ctx).Preload("Employee")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var leaves []*leaveDatamodel.Leave
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&leaves).Error
	return leaves, err
}

func (r *LeaveRepository) UpdateDecision(ctx context.Context, l *leaveDatamodel.Leave) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&leaveDatamodel.Leave{}).
		Where("id = ? AND status = ?", l.ID, leaveDatamodel.StatusPending).
		Updates(map[string]interface{}{
			"status":           l.Status,
			"approved_by":      l.ApprovedBy,
			"approved_at":      l.ApprovedAt,
			"rejection_reason": l.RejectionReason,
			"updated_at":       l.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LeaveRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&leaveDatamodel.Leave{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
