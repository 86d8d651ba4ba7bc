package chat

import "time"

// MessageRequest represents one inbound message from the bot transport
type MessageRequest struct {
	Text           string    `json:"text" validate:"required,min=1"`
	SenderName     string    `json:"sender_name,omitempty"`
	SentAt         time.Time `json:"sent_at,omitempty"`
	ConversationID string    `json:"conversation_id,omitempty"`
}
