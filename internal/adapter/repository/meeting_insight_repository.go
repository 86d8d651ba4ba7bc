package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
	usecaseErrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
)

// MeetingInsightRepository implements the meeting insight repository interface using GORM
type MeetingInsightRepository struct {
	db *gorm.DB
}

// NewMeetingInsightRepository creates a new meeting insight repository
func NewMeetingInsightRepository(db *gorm.DB) *MeetingInsightRepository {
	return &MeetingInsightRepository{
		db: db,
	}
}

// Create inserts a new meeting insight
func (r *MeetingInsightRepository) Create(ctx context.Context, insight *entities.MeetingInsight) error {
	if err := insight.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(insight).Error; err != nil {
		if isUniqueViolation(err) {
			return usecaseErrors.ErrMeetingExists
		}
		return mapStoreError("create meeting insight", err)
	}
	return nil
}

// MetadataByDate returns the meeting count and ids for a date, in upload order
func (r *MeetingInsightRepository) MetadataByDate(ctx context.Context, date string) (int, []string, error) {
	var meetingIDs []string
	if err := r.db.WithContext(ctx).
		Model(&entities.MeetingInsight{}).
		Where("date = ?", date).
		Order("created_at ASC").
		Pluck("meeting_id", &meetingIDs).Error; err != nil {
		return 0, nil, mapStoreError("list meeting ids", err)
	}
	if meetingIDs == nil {
		meetingIDs = []string{}
	}
	return len(meetingIDs), meetingIDs, nil
}

// FindByDateAndID finds an insight by its (date, meeting_id) identity
func (r *MeetingInsightRepository) FindByDateAndID(ctx context.Context, date, meetingID string) (*entities.MeetingInsight, error) {
	var insight entities.MeetingInsight
	if err := r.db.WithContext(ctx).
		Where("date = ? AND meeting_id = ?", date, meetingID).
		First(&insight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, mapStoreError("find meeting insight", err)
	}
	return &insight, nil
}
