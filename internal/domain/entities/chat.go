package entities

import "time"

// ChatTurn is one remembered turn of a conversation
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// InboundMessage carries one message from the bot transport together with its
// contextual metadata.
type InboundMessage struct {
	Text           string
	SenderName     string
	SentAt         time.Time
	ConversationID string
}
