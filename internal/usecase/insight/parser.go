package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	usecaseerrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
)

// extractedInsights is the wire shape of a meeting analysis response
type extractedInsights struct {
	Summary     string   `json:"Summary"`
	KeyPoints   []string `json:"key_points_discussed"`
	ActionItems []string `json:"action_items"`
}

// parseInsights parses and validates an analysis response. A missing summary
// rejects the whole response; empty point and action lists are fine for short
// meetings.
func parseInsights(content string) (*extractedInsights, error) {
	content = extractJSON(content)

	var result extractedInsights
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseerrors.ErrMalformedResponse, err)
	}

	result.Summary = strings.TrimSpace(result.Summary)
	if result.Summary == "" {
		return nil, usecaseerrors.ErrExtractionIncomplete
	}

	if result.KeyPoints == nil {
		result.KeyPoints = make([]string, 0)
	}
	if result.ActionItems == nil {
		result.ActionItems = make([]string, 0)
	}

	return &result, nil
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
