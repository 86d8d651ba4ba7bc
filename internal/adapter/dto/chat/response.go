package chat

// MessageResponse carries the bot's reply to one inbound message
type MessageResponse struct {
	Reply string `json:"reply"`
}
