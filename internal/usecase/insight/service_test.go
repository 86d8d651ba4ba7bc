package insight

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
	usecaseerrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
	"github.com/einsteinmuna/dialoguedesk/pkg/llm"
)

// fakeTranscriber records payload sizes and returns numbered transcripts
type fakeTranscriber struct {
	sizes []int
	names []string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, filename string, audio io.Reader) (string, error) {
	b, err := io.ReadAll(audio)
	if err != nil {
		return "", err
	}
	f.sizes = append(f.sizes, len(b))
	f.names = append(f.names, filename)
	return fmt.Sprintf("part%d", len(f.sizes)), nil
}

// fakeInsightCompleter returns one canned analysis response, optionally
// failing the first failuresLeft calls
type fakeInsightCompleter struct {
	response     string
	err          error
	failuresLeft int
	calls        int
}

func (f *fakeInsightCompleter) Complete(_ context.Context, _ []llm.ChatMessage) (string, error) {
	f.calls++
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return "", fmt.Errorf("upstream unavailable")
	}
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeInsightRepo is an in-memory insight store
type fakeInsightRepo struct {
	records []*entities.MeetingInsight
}

func (f *fakeInsightRepo) Create(_ context.Context, insight *entities.MeetingInsight) error {
	if err := insight.Validate(); err != nil {
		return err
	}
	for _, r := range f.records {
		if r.Date == insight.Date && r.MeetingID == insight.MeetingID {
			return usecaseerrors.ErrMeetingExists
		}
	}
	f.records = append(f.records, insight)
	return nil
}

func (f *fakeInsightRepo) MetadataByDate(_ context.Context, date string) (int, []string, error) {
	ids := []string{}
	for _, r := range f.records {
		if r.Date == date {
			ids = append(ids, r.MeetingID)
		}
	}
	return len(ids), ids, nil
}

func (f *fakeInsightRepo) FindByDateAndID(_ context.Context, date, meetingID string) (*entities.MeetingInsight, error) {
	for _, r := range f.records {
		if r.Date == date && r.MeetingID == meetingID {
			return r, nil
		}
	}
	return nil, usecaseerrors.ErrMeetingNotFound
}

const validAnalysis = `{
	"Summary": "The team reviewed the quarterly roadmap and agreed on priorities.",
	"key_points_discussed": ["Roadmap reviewed", "Budget approved"],
	"action_items": ["Dana to draft the proposal by Friday"]
}`

func newTestInsightService(tr Transcriber, completer Completer, repo *fakeInsightRepo) *Service {
	return NewService(tr, completer, nil, repo, zap.NewNop())
}

func TestTranscribe_SingleChunkAtLimit(t *testing.T) {
	tr := &fakeTranscriber{}
	svc := newTestInsightService(tr, &fakeInsightCompleter{}, &fakeInsightRepo{})

	audio := make([]byte, maxChunkBytes)
	text, err := svc.Transcribe(context.Background(), "standup.mp3", audio)
	require.NoError(t, err)

	// exactly at the limit stays a single request
	assert.Equal(t, "part1", text)
	require.Len(t, tr.sizes, 1)
	assert.Equal(t, maxChunkBytes, tr.sizes[0])
	assert.Equal(t, "standup.mp3", tr.names[0])
}

func TestTranscribe_SplitsOversizedRecording(t *testing.T) {
	tr := &fakeTranscriber{}
	svc := newTestInsightService(tr, &fakeInsightCompleter{}, &fakeInsightRepo{})

	audio := make([]byte, maxChunkBytes+1)
	text, err := svc.Transcribe(context.Background(), "allhands.mp3", audio)
	require.NoError(t, err)

	// chunk transcripts are joined with a single space
	assert.Equal(t, "part1 part2", text)
	require.Len(t, tr.sizes, 2)
	assert.Equal(t, maxChunkBytes, tr.sizes[0])
	assert.Equal(t, 1, tr.sizes[1])
	assert.Equal(t, "allhands_part0.mp3", tr.names[0])
	assert.Equal(t, "allhands_part1.mp3", tr.names[1])
}

func TestTranscribe_EmptyRecording(t *testing.T) {
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{}, &fakeInsightRepo{})

	_, err := svc.Transcribe(context.Background(), "empty.mp3", nil)
	assert.ErrorIs(t, err, usecaseerrors.ErrEmptyRecording)
}

func TestExtractInsights(t *testing.T) {
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{response: validAnalysis}, &fakeInsightRepo{})

	result, err := svc.ExtractInsights(context.Background(), "we talked about the roadmap")
	require.NoError(t, err)
	assert.Equal(t, "The team reviewed the quarterly roadmap and agreed on priorities.", result.Summary)
	assert.Equal(t, []string{"Roadmap reviewed", "Budget approved"}, result.KeyPoints)
	assert.Equal(t, []string{"Dana to draft the proposal by Friday"}, result.ActionItems)
}

func TestExtractInsights_FencedResponse(t *testing.T) {
	fenced := "```json\n" + validAnalysis + "\n```"
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{response: fenced}, &fakeInsightRepo{})

	result, err := svc.ExtractInsights(context.Background(), "we talked about the roadmap")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Summary)
}

func TestExtractInsights_RetriesTransientFailure(t *testing.T) {
	completer := &fakeInsightCompleter{response: validAnalysis, failuresLeft: 1}
	svc := newTestInsightService(&fakeTranscriber{}, completer, &fakeInsightRepo{})

	result, err := svc.ExtractInsights(context.Background(), "we talked about the roadmap")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Summary)
	assert.Equal(t, 2, completer.calls)
}

func TestExtractInsights_MissingSummary(t *testing.T) {
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{response: `{"key_points_discussed":[]}`}, &fakeInsightRepo{})

	_, err := svc.ExtractInsights(context.Background(), "short meeting")
	assert.ErrorIs(t, err, usecaseerrors.ErrExtractionIncomplete)
}

func TestExtractInsights_Malformed(t *testing.T) {
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{response: "I cannot analyze this"}, &fakeInsightRepo{})

	_, err := svc.ExtractInsights(context.Background(), "short meeting")
	assert.ErrorIs(t, err, usecaseerrors.ErrMalformedResponse)
}

func TestProcess_AssignsSequentialMeetingLabels(t *testing.T) {
	repo := &fakeInsightRepo{}
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{response: validAnalysis}, repo)

	first, err := svc.Process(context.Background(), "2026-09-01", "standup.mp3", []byte("audio-1"))
	require.NoError(t, err)
	assert.Equal(t, "Meeting 1", first.MeetingID)

	second, err := svc.Process(context.Background(), "2026-09-01", "retro.mp3", []byte("audio-2"))
	require.NoError(t, err)
	assert.Equal(t, "Meeting 2", second.MeetingID)

	// a different day restarts the sequence
	otherDay, err := svc.Process(context.Background(), "2026-09-02", "planning.mp3", []byte("audio-3"))
	require.NoError(t, err)
	assert.Equal(t, "Meeting 1", otherDay.MeetingID)
}

func TestProcess_WrapsTranscriptionFailure(t *testing.T) {
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{response: validAnalysis}, &fakeInsightRepo{})

	_, err := svc.Process(context.Background(), "2026-09-01", "standup.mp3", nil)
	assert.ErrorIs(t, err, usecaseerrors.ErrTranscriptionFailed)
	// the cause stays visible through the wrap
	assert.ErrorIs(t, err, usecaseerrors.ErrEmptyRecording)
}

func TestProcess_PersistsInsights(t *testing.T) {
	repo := &fakeInsightRepo{}
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{response: validAnalysis}, repo)

	record, err := svc.Process(context.Background(), "2026-09-01", "standup.mp3", []byte("audio"))
	require.NoError(t, err)

	stored, err := svc.Search(context.Background(), "2026-09-01", record.MeetingID)
	require.NoError(t, err)
	assert.Equal(t, "part1", stored.Transcript)
	assert.Equal(t, record.AISummary, stored.AISummary)
	assert.Len(t, stored.KeyPoints, 2)
}

func TestMetadata_EmptyDate(t *testing.T) {
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{}, &fakeInsightRepo{})

	count, meetings, err := svc.Metadata(context.Background(), "2026-01-01")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, meetings)
}

func TestSearch_NotFound(t *testing.T) {
	svc := newTestInsightService(&fakeTranscriber{}, &fakeInsightCompleter{}, &fakeInsightRepo{})

	_, err := svc.Search(context.Background(), "2026-01-01", "Meeting 9")
	assert.ErrorIs(t, err, usecaseerrors.ErrMeetingNotFound)
}
