package meeting

import "github.com/einsteinmuna/dialoguedesk/internal/domain/entities"

// InsightResponse represents the stored insights of one meeting
type InsightResponse struct {
	Date        string   `json:"date"`
	MeetingID   string   `json:"meeting_id"`
	AISummary   string   `json:"ai_summary"`
	KeyPoints   []string `json:"key_points"`
	ActionItems []string `json:"action_items"`
	Transcript  string   `json:"transcript,omitempty"`
}

// MetadataResponse reports the meetings recorded for a date
type MetadataResponse struct {
	Date     string   `json:"date"`
	Count    int      `json:"count"`
	Meetings []string `json:"meetings"`
}

// NewInsightResponse builds an InsightResponse from an insight record
func NewInsightResponse(record *entities.MeetingInsight, includeTranscript bool) *InsightResponse {
	resp := &InsightResponse{
		Date:        record.Date,
		MeetingID:   record.MeetingID,
		AISummary:   record.AISummary,
		KeyPoints:   record.KeyPoints,
		ActionItems: record.ActionItems,
	}
	if includeTranscript {
		resp.Transcript = record.Transcript
	}
	return resp
}
