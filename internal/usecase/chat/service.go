package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
	"github.com/einsteinmuna/dialoguedesk/internal/domain/repositories"
	usecaseerrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
)

// historyDepth is how many remembered turns feed the conversation prompt
const historyDepth = 10

// HistoryStore remembers recent conversation turns per conversation
type HistoryStore interface {
	Append(ctx context.Context, conversationID string, turn entities.ChatTurn) error
	Recent(ctx context.Context, conversationID string, n int) ([]entities.ChatTurn, error)
}

// Service handles inbound chat messages end to end: classification, the
// complaint operations, and regular conversation. Handle always returns a
// user-facing reply; failures are logged and answered with an apology.
type Service struct {
	extractor  *Extractor
	complaints repositories.ComplaintRepository
	history    HistoryStore
	logger     *zap.Logger
}

// NewService creates a new chat service
func NewService(extractor *Extractor, complaints repositories.ComplaintRepository, history HistoryStore, logger *zap.Logger) *Service {
	return &Service{
		extractor:  extractor,
		complaints: complaints,
		history:    history,
		logger:     logger,
	}
}

// Classify determines the intent of a message
func (s *Service) Classify(ctx context.Context, text string) (entities.Intent, error) {
	return s.extractor.Classify(ctx, text)
}

// Handle processes one inbound message and returns the reply text
func (s *Service) Handle(ctx context.Context, msg entities.InboundMessage) string {
	intent, err := s.extractor.Classify(ctx, msg.Text)
	if err != nil {
		s.logger.Error("intent classification failed", zap.Error(err))
		return apologyReply
	}

	var reply string
	switch intent {
	case entities.IntentComplaint:
		reply = s.handleComplaint(ctx, msg)
	case entities.IntentGetComplaintStatus:
		reply = s.handleStatusLookup(ctx, msg)
	case entities.IntentChangeNotifyPref:
		reply = s.handlePreferenceChange(ctx, msg)
	default:
		reply = s.handleConversation(ctx, msg)
	}

	s.remember(ctx, msg, reply)
	return reply
}

func (s *Service) handleComplaint(ctx context.Context, msg entities.InboundMessage) string {
	fields, err := s.extractor.ExtractComplaint(ctx, msg.Text)
	if err != nil {
		if errors.Is(err, usecaseerrors.ErrExtractionIncomplete) {
			return composeNotAComplaintReply()
		}
		s.logger.Error("complaint extraction failed", zap.Error(err))
		return apologyReply
	}

	pref, err := entities.ParseNotifyPreference(fields.ReceiveUpdates)
	if err != nil {
		pref = entities.NotifyYes
	}

	sentAt := msg.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}
	complaint := &entities.Complaint{
		Date:           sentAt.Format("2006-01-02"),
		Text:           fields.ComplaintText,
		Topic1:         fields.Topic1,
		Topic2:         &fields.Topic2,
		ReceiveUpdates: pref,
		Status:         entities.ComplaintStatusPending,
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		s.logger.Error("failed to lodge complaint", zap.Error(err))
		return apologyReply
	}

	s.logger.Info("complaint lodged",
		zap.String("complaint_id", complaint.ID.String()),
		zap.String("topic", complaint.PrimaryTopic()),
	)

	return composeComplaintLodged(complaint)
}

func (s *Service) handleStatusLookup(ctx context.Context, msg entities.InboundMessage) string {
	rawID, err := s.extractor.ExtractComplaintID(ctx, msg.Text)
	if err != nil {
		s.logger.Error("complaint ID extraction failed", zap.Error(err))
		return apologyReply
	}
	if rawID == "" {
		return composeMissingIDReply()
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return composeInvalidIDReply()
	}

	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, usecaseerrors.ErrComplaintNotFound) {
			return composeNotFoundReply()
		}
		s.logger.Error("complaint lookup failed", zap.Error(err), zap.String("complaint_id", rawID))
		return apologyReply
	}

	return composeStatusReply(complaint)
}

func (s *Service) handlePreferenceChange(ctx context.Context, msg entities.InboundMessage) string {
	rawID, pref, err := s.extractor.ExtractPreferenceChange(ctx, msg.Text)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidPreference) {
			return composeMissingIDReply()
		}
		s.logger.Error("preference extraction failed", zap.Error(err))
		return apologyReply
	}
	if rawID == "" {
		return composeMissingIDReply()
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return composeInvalidIDReply()
	}

	complaint, err := s.complaints.UpdatePreference(ctx, id, pref)
	if err != nil {
		if errors.Is(err, usecaseerrors.ErrComplaintNotFound) {
			return composeNotFoundReply()
		}
		s.logger.Error("preference update failed", zap.Error(err), zap.String("complaint_id", rawID))
		return apologyReply
	}

	return composePreferenceReply(complaint)
}

func (s *Service) handleConversation(ctx context.Context, msg entities.InboundMessage) string {
	var history []entities.ChatTurn
	if s.history != nil && msg.ConversationID != "" {
		turns, err := s.history.Recent(ctx, msg.ConversationID, historyDepth)
		if err != nil {
			s.logger.Warn("failed to load conversation history", zap.Error(err))
		} else {
			history = turns
		}
	}

	reply, err := s.extractor.Converse(ctx, msg, history)
	if err != nil {
		s.logger.Error("conversation completion failed", zap.Error(err))
		return apologyReply
	}

	return reply
}

// remember appends the exchange to conversation history, best-effort
func (s *Service) remember(ctx context.Context, msg entities.InboundMessage, reply string) {
	if s.history == nil || msg.ConversationID == "" {
		return
	}

	if err := s.history.Append(ctx, msg.ConversationID, entities.ChatTurn{Role: "user", Content: msg.Text}); err != nil {
		s.logger.Warn("failed to record user turn", zap.Error(err))
		return
	}
	if err := s.history.Append(ctx, msg.ConversationID, entities.ChatTurn{Role: "assistant", Content: reply}); err != nil {
		s.logger.Warn("failed to record assistant turn", zap.Error(err))
	}
}
