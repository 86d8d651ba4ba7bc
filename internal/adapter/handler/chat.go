package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/einsteinmuna/dialoguedesk/errors"
	chatdto "github.com/einsteinmuna/dialoguedesk/internal/adapter/dto/chat"
	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
	"github.com/einsteinmuna/dialoguedesk/internal/usecase/chat"
)

// Chat handles inbound bot messages
type Chat struct {
	service *chat.Service
	logger  *zap.Logger
}

// NewChat creates a new chat handler
func NewChat(service *chat.Service, logger *zap.Logger) *Chat {
	return &Chat{
		service: service,
		logger:  logger,
	}
}

// HandleMessage processes one inbound message and returns the bot's reply.
// The reply is always 200: user-facing failures are folded into the reply
// text by the chat service.
func (h *Chat) HandleMessage(c echo.Context) error {
	var req chatdto.MessageRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	sentAt := req.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	reply := h.service.Handle(c.Request().Context(), entities.InboundMessage{
		Text:           req.Text,
		SenderName:     req.SenderName,
		SentAt:         sentAt,
		ConversationID: req.ConversationID,
	})

	return HandleSuccess(h.logger, c, chatdto.MessageResponse{Reply: reply})
}
