package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/einsteinmuna/dialoguedesk/errors"
	usecaseerrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
)

func TestMapInsightError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		httpCode int
		code     errors.ErrorCode
	}{
		{
			name:     "empty recording rejected as bad payload",
			err:      usecaseerrors.ErrEmptyRecording,
			httpCode: http.StatusBadRequest,
			code:     errors.ErrorCode_INVALID_PAYLOAD,
		},
		{
			name:     "duplicate meeting maps to conflict",
			err:      fmt.Errorf("store insights: %w", usecaseerrors.ErrMeetingExists),
			httpCode: http.StatusConflict,
			code:     errors.ErrorCode_ALREADY_EXISTS,
		},
		{
			name:     "store permission denied",
			err:      fmt.Errorf("%w: SQLSTATE 42501", usecaseerrors.ErrStoreUnauthorized),
			httpCode: http.StatusInternalServerError,
			code:     errors.ErrorCode_STORE_PERMISSION_DENIED,
		},
		{
			name:     "transcription failure",
			err:      fmt.Errorf("%w: chunk 1: timeout", usecaseerrors.ErrTranscriptionFailed),
			httpCode: http.StatusInternalServerError,
			code:     errors.ErrorCode_TRANSCRIPTION_FAILED,
		},
		{
			name:     "incomplete extraction",
			err:      usecaseerrors.ErrExtractionIncomplete,
			httpCode: http.StatusInternalServerError,
			code:     errors.ErrorCode_EXTRACTION_FAILED,
		},
		{
			name:     "unrecognized errors stay internal",
			err:      fmt.Errorf("connection reset"),
			httpCode: http.StatusInternalServerError,
			code:     errors.ErrorCode_INTERNAL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapInsightError("process recording", tt.err)

			appErr, ok := mapped.(errors.AppError)
			require.True(t, ok)
			assert.Equal(t, tt.httpCode, appErr.HTTPCode)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}
