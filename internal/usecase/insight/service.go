package insight

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
	"github.com/einsteinmuna/dialoguedesk/internal/domain/repositories"
	usecaseerrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
	"github.com/einsteinmuna/dialoguedesk/pkg/llm"
)

// maxChunkBytes is the per-request payload limit of the transcription API.
// Recordings above it are split into byte chunks transcribed independently.
const maxChunkBytes = 25 * 1024 * 1024

// Transcriber converts audio into text
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Completer produces chat completions
type Completer interface {
	Complete(ctx context.Context, messages []llm.ChatMessage) (string, error)
}

// Archiver stores raw recordings, best-effort
type Archiver interface {
	Store(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// Service runs the meeting pipeline: archive the recording, transcribe it,
// extract insights, and persist them under a sequential per-day meeting label.
type Service struct {
	transcriber Transcriber
	completer   Completer
	archive     Archiver
	insights    repositories.MeetingInsightRepository
	logger      *zap.Logger
}

// NewService creates a new insight service. archive may be nil when object
// storage is disabled.
func NewService(transcriber Transcriber, completer Completer, archive Archiver, insights repositories.MeetingInsightRepository, logger *zap.Logger) *Service {
	return &Service{
		transcriber: transcriber,
		completer:   completer,
		archive:     archive,
		insights:    insights,
		logger:      logger,
	}
}

// Transcribe converts a recording to text. Recordings above the chunk limit
// are split into byte chunks; chunk transcripts are joined with a single
// space.
func (s *Service) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", usecaseerrors.ErrEmptyRecording
	}

	if len(audio) <= maxChunkBytes {
		return s.transcribeChunk(ctx, filename, audio)
	}

	parts := make([]string, 0, len(audio)/maxChunkBytes+1)
	for i, offset := 0, 0; offset < len(audio); i, offset = i+1, offset+maxChunkBytes {
		end := offset + maxChunkBytes
		if end > len(audio) {
			end = len(audio)
		}

		text, err := s.transcribeChunk(ctx, chunkName(filename, i), audio[offset:end])
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", i, err)
		}
		parts = append(parts, text)
	}

	return strings.Join(parts, " "), nil
}

// transcribeChunk transcribes one payload with retry on transient failures
func (s *Service) transcribeChunk(ctx context.Context, filename string, chunk []byte) (string, error) {
	var transcript string

	operation := func() error {
		text, err := s.transcriber.Transcribe(ctx, filename, bytes.NewReader(chunk))
		if err != nil {
			return err
		}
		transcript = text
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = time.Second
	expBackoff.MaxElapsedTime = 2 * time.Minute

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, 2), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}

	return strings.TrimSpace(transcript), nil
}

func chunkName(filename string, index int) string {
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		return fmt.Sprintf("%s_part%d%s", filename[:idx], index, filename[idx:])
	}
	return fmt.Sprintf("%s_part%d", filename, index)
}

// ExtractInsights distills a transcript into a summary, key points, and
// action items
func (s *Service) ExtractInsights(ctx context.Context, transcript string) (*extractedInsights, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, usecaseerrors.ErrEmptyRecording
	}

	content, err := s.completeWithRetry(ctx, []llm.ChatMessage{
		{Role: "system", Content: extractionPrompt},
		{Role: "user", Content: transcript},
	})
	if err != nil {
		return nil, err
	}

	return parseInsights(content)
}

// completeWithRetry calls the completion service with retry on transient
// failures, same policy as transcribeChunk
func (s *Service) completeWithRetry(ctx context.Context, messages []llm.ChatMessage) (string, error) {
	var content string

	operation := func() error {
		result, err := s.completer.Complete(ctx, messages)
		if err != nil {
			return err
		}
		content = result
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 500 * time.Millisecond
	expBackoff.MaxElapsedTime = 30 * time.Second

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, 2), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}

	return content, nil
}

// Process runs the full pipeline for one recording and returns the persisted
// insight record
func (s *Service) Process(ctx context.Context, date string, filename string, audio []byte) (*entities.MeetingInsight, error) {
	if s.archive != nil {
		objectName := fmt.Sprintf("%s/%s", date, filename)
		if _, err := s.archive.Store(ctx, objectName, bytes.NewReader(audio), int64(len(audio)), "application/octet-stream"); err != nil {
			s.logger.Warn("failed to archive recording", zap.Error(err), zap.String("object", objectName))
		}
	}

	transcript, err := s.Transcribe(ctx, filename, audio)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseerrors.ErrTranscriptionFailed, err)
	}

	extracted, err := s.ExtractInsights(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("insight extraction failed: %w", err)
	}

	count, _, err := s.insights.MetadataByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings for %s: %w", date, err)
	}

	record := &entities.MeetingInsight{
		Date:        date,
		MeetingID:   entities.MeetingLabel(count + 1),
		Transcript:  transcript,
		AISummary:   extracted.Summary,
		KeyPoints:   datatypes.JSONSlice[string](extracted.KeyPoints),
		ActionItems: datatypes.JSONSlice[string](extracted.ActionItems),
	}

	if err := s.insights.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store meeting insights: %w", err)
	}

	s.logger.Info("meeting processed",
		zap.String("date", record.Date),
		zap.String("meeting_id", record.MeetingID),
		zap.Int("transcript_chars", len(transcript)),
	)

	return record, nil
}

// Metadata reports how many meetings are recorded for a date and their labels
func (s *Service) Metadata(ctx context.Context, date string) (int, []string, error) {
	return s.insights.MetadataByDate(ctx, date)
}

// Search returns the stored insights for one meeting on one date
func (s *Service) Search(ctx context.Context, date string, meetingID string) (*entities.MeetingInsight, error) {
	return s.insights.FindByDateAndID(ctx, date, meetingID)
}
