package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
	usecaseErrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
)

// ComplaintRepository implements the complaint repository interface using GORM
type ComplaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
	}
}

// Create inserts a new complaint after checking the required-field precondition
func (r *ComplaintRepository) Create(ctx context.Context, complaint *entities.Complaint) error {
	if err := complaint.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(complaint).Error; err != nil {
		return mapStoreError("create complaint", err)
	}
	return nil
}

// FindByID finds a complaint by ID
func (r *ComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Complaint, error) {
	var complaint entities.Complaint
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrComplaintNotFound
		}
		return nil, mapStoreError("find complaint", err)
	}
	return &complaint, nil
}

// UpdatePreference sets the notification preference and returns the updated record
func (r *ComplaintRepository) UpdatePreference(ctx context.Context, id uuid.UUID, pref entities.NotifyPreference) (*entities.Complaint, error) {
	if pref != entities.NotifyYes && pref != entities.NotifyNo {
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidPreference, pref)
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Complaint{}).
		Where("id = ?", id).
		Update("receive_updates", pref)
	if res.Error != nil {
		return nil, mapStoreError("update preference", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, usecaseErrors.ErrComplaintNotFound
	}

	return r.FindByID(ctx, id)
}
