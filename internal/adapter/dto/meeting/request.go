package meeting

// MetadataRequest asks how many meetings are recorded for a date
type MetadataRequest struct {
	Date string `query:"date" validate:"required,datetime=2006-01-02"`
}

// SearchRequest asks for the stored insights of one meeting
type SearchRequest struct {
	Date      string `query:"date" validate:"required,datetime=2006-01-02"`
	MeetingID string `query:"meeting_id" validate:"required"`
}
