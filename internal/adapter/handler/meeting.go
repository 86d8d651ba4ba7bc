package handler

import (
	stdErrors "errors"
	"io"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/einsteinmuna/dialoguedesk/errors"
	meetingdto "github.com/einsteinmuna/dialoguedesk/internal/adapter/dto/meeting"
	usecaseerrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
	"github.com/einsteinmuna/dialoguedesk/internal/usecase/insight"
)

// Meeting handles recording uploads and insight lookups
type Meeting struct {
	service *insight.Service
	logger  *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(service *insight.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		service: service,
		logger:  logger,
	}
}

// Upload accepts a meeting recording and runs the insight pipeline.
// Multipart form: "recording" (the audio file) and optional "date"
// (YYYY-MM-DD, defaults to today).
func (h *Meeting) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("recording")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	date := c.FormValue("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidMeetingDate(date))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	record, err := h.service.Process(c.Request().Context(), date, fileHeader.Filename, audio)
	if err != nil {
		return HandleError(h.logger, c, mapInsightError("process recording", err))
	}

	return HandleSuccess(h.logger, c, meetingdto.NewInsightResponse(record, false))
}

// Metadata reports how many meetings are recorded for a date and their labels
func (h *Meeting) Metadata(c echo.Context) error {
	var req meetingdto.MetadataRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidMeetingDate(req.Date))
	}

	count, meetings, err := h.service.Metadata(c.Request().Context(), req.Date)
	if err != nil {
		return HandleError(h.logger, c, mapInsightError("list meetings", err))
	}

	return HandleSuccess(h.logger, c, meetingdto.MetadataResponse{
		Date:     req.Date,
		Count:    count,
		Meetings: meetings,
	})
}

// Search returns the stored insights for one meeting on one date
func (h *Meeting) Search(c echo.Context) error {
	var req meetingdto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	record, err := h.service.Search(c.Request().Context(), req.Date, req.MeetingID)
	if err != nil {
		if stdErrors.Is(err, usecaseerrors.ErrMeetingNotFound) {
			return HandleError(h.logger, c, errors.ErrMeetingNotFound(req.Date, req.MeetingID))
		}
		return HandleError(h.logger, c, mapInsightError("search meeting", err))
	}

	return HandleSuccess(h.logger, c, meetingdto.NewInsightResponse(record, true))
}

// mapInsightError maps pipeline sentinels to transport-level errors
func mapInsightError(operation string, err error) error {
	switch {
	case stdErrors.Is(err, usecaseerrors.ErrEmptyRecording):
		return errors.ErrInvalidPayload(err)
	case stdErrors.Is(err, usecaseerrors.ErrMeetingExists):
		return errors.ErrAlreadyExists("meeting insight")
	case stdErrors.Is(err, usecaseerrors.ErrStoreUnauthorized):
		return errors.ErrStorePermissionDenied(operation, err)
	case stdErrors.Is(err, usecaseerrors.ErrTranscriptionFailed):
		return errors.ErrTranscriptionFailed(err)
	case stdErrors.Is(err, usecaseerrors.ErrEmptyCompletion),
		stdErrors.Is(err, usecaseerrors.ErrMalformedResponse),
		stdErrors.Is(err, usecaseerrors.ErrExtractionIncomplete):
		return errors.ErrInsightExtractionFailed(err)
	default:
		return errors.ErrInternal(err)
	}
}
