package errors

import "errors"

// Complaint errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
)

// Meeting insight errors
var (
	ErrMeetingNotFound = errors.New("meeting insight not found")
	ErrMeetingExists   = errors.New("meeting insight already recorded for that date and id")
	ErrEmptyRecording  = errors.New("recording payload is empty")
)

// Completion service errors
var (
	ErrEmptyCompletion      = errors.New("completion service returned an empty response")
	ErrMalformedResponse    = errors.New("completion service response did not match the expected schema")
	ErrExtractionIncomplete = errors.New("extraction response is missing required fields")
	ErrTranscriptionFailed  = errors.New("audio transcription failed")
)

// Record store errors
var (
	ErrStoreUnauthorized = errors.New("record store rejected the operation: insufficient permissions")
)
