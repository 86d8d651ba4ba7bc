package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
)

// ComplaintRepository defines persistence operations for complaints
type ComplaintRepository interface {
	// Create inserts a new complaint. The store assigns the ID. Records
	// missing any required field are rejected with a validation error and
	// nothing is persisted.
	Create(ctx context.Context, complaint *entities.Complaint) error

	// FindByID returns the complaint with the given ID, or
	// errors.ErrComplaintNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Complaint, error)

	// UpdatePreference sets the notification preference and returns the
	// updated record, so callers can report the applied preference and the
	// complaint's primary topic.
	UpdatePreference(ctx context.Context, id uuid.UUID, pref entities.NotifyPreference) (*entities.Complaint, error)
}
