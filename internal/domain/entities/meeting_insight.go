package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingInsight is the structured artifact derived from one processed recording.
// Identity is the (Date, MeetingID) pair, unique per logical day; a record is
// written once and never mutated.
type MeetingInsight struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date        string                      `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_meeting_insights_day"`
	MeetingID   string                      `json:"meeting_id" gorm:"column:meeting_id;type:varchar(50);not null;uniqueIndex:idx_meeting_insights_day"`
	Transcript  string                      `json:"transcript" gorm:"type:text;not null"`
	AISummary   string                      `json:"ai_summary" gorm:"column:ai_summary;type:text;not null"`
	KeyPoints   datatypes.JSONSlice[string] `json:"key_points" gorm:"type:jsonb;not null"`
	ActionItems datatypes.JSONSlice[string] `json:"action_items" gorm:"type:jsonb;not null"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name used by GORM
func (MeetingInsight) TableName() string {
	return "meeting_insights"
}

// Validate checks the insert precondition for a meeting insight
func (m *MeetingInsight) Validate() error {
	if _, err := time.Parse("2006-01-02", m.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, m.Date)
	}
	if m.MeetingID == "" {
		return fmt.Errorf("%w: meeting_id", ErrMissingRequiredFields)
	}
	if m.Transcript == "" {
		return fmt.Errorf("%w: transcript", ErrMissingRequiredFields)
	}
	return nil
}

// MeetingLabel builds the sequence-scoped meeting identifier for the n-th
// meeting of a day (1-based).
func MeetingLabel(n int) string {
	return fmt.Sprintf("Meeting %d", n)
}
