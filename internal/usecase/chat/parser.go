package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	usecaseerrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
)

// complaintFields is the wire shape of an extracted complaint
type complaintFields struct {
	ComplaintText  string `json:"complaint_text"`
	Topic1         string `json:"complaint_topic_1"`
	Topic2         string `json:"complaint_topic_2"`
	ReceiveUpdates string `json:"receive_updates"`
	Status         string `json:"status"`
}

// idFields is the wire shape of an extracted complaint reference
type idFields struct {
	ComplaintID    string `json:"complaint_id"`
	ReceiveUpdates string `json:"receive_updates"`
}

// parseComplaintFields parses and validates an extraction response.
// Every field must be present; a partial extraction is rejected rather
// than persisted with blanks.
func parseComplaintFields(content string) (*complaintFields, error) {
	content = extractJSON(content)

	var fields complaintFields
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseerrors.ErrMalformedResponse, err)
	}

	fields.ComplaintText = strings.TrimSpace(fields.ComplaintText)
	fields.Topic1 = strings.TrimSpace(strings.ToLower(fields.Topic1))
	fields.Topic2 = strings.TrimSpace(strings.ToLower(fields.Topic2))
	fields.ReceiveUpdates = strings.TrimSpace(strings.ToLower(fields.ReceiveUpdates))
	fields.Status = strings.TrimSpace(strings.ToLower(fields.Status))

	if fields.ReceiveUpdates == "" {
		fields.ReceiveUpdates = "yes"
	}
	if fields.Status == "" {
		fields.Status = "pending"
	}

	if fields.ComplaintText == "" || fields.Topic1 == "" || fields.Topic2 == "" {
		return nil, usecaseerrors.ErrExtractionIncomplete
	}

	return &fields, nil
}

// parseIDFields parses a complaint-reference extraction response
func parseIDFields(content string) (*idFields, error) {
	content = extractJSON(content)

	var fields idFields
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseerrors.ErrMalformedResponse, err)
	}

	fields.ComplaintID = strings.TrimSpace(fields.ComplaintID)
	fields.ReceiveUpdates = strings.TrimSpace(strings.ToLower(fields.ReceiveUpdates))

	return &fields, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
