package repositories

import (
	"context"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
)

// MeetingInsightRepository defines persistence operations for meeting insights
type MeetingInsightRepository interface {
	// Create inserts a new insight. Duplicate (date, meeting_id) pairs are
	// rejected with errors.ErrMeetingExists.
	Create(ctx context.Context, insight *entities.MeetingInsight) error

	// MetadataByDate returns the number of meetings recorded for a date and
	// their ids in upload order. A date with no meetings yields (0, empty).
	MetadataByDate(ctx context.Context, date string) (int, []string, error)

	// FindByDateAndID returns the insight for a (date, meeting_id) pair, or
	// errors.ErrMeetingNotFound.
	FindByDateAndID(ctx context.Context, date, meetingID string) (*entities.MeetingInsight, error)
}
