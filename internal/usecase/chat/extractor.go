package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
	usecaseerrors "github.com/einsteinmuna/dialoguedesk/internal/usecase/errors"
	"github.com/einsteinmuna/dialoguedesk/pkg/llm"
)

// Completer produces chat completions
type Completer interface {
	Complete(ctx context.Context, messages []llm.ChatMessage) (string, error)
}

// Extractor drives the language model for classification and structured
// field extraction
type Extractor struct {
	completer  Completer
	maxRetries uint64
}

// NewExtractor creates a new Extractor
func NewExtractor(completer Completer) *Extractor {
	return &Extractor{
		completer:  completer,
		maxRetries: 2,
	}
}

// complete calls the model with retry on transient failures
func (e *Extractor) complete(ctx context.Context, messages []llm.ChatMessage) (string, error) {
	var content string

	operation := func() error {
		result, err := e.completer.Complete(ctx, messages)
		if err != nil {
			return err
		}
		content = result
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 500 * time.Millisecond
	expBackoff.MaxElapsedTime = 30 * time.Second

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, e.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}

	if strings.TrimSpace(content) == "" {
		return "", usecaseerrors.ErrEmptyCompletion
	}

	return content, nil
}

// Classify determines the intent of a message. Labels outside the supported
// set fall back to regular conversation.
func (e *Extractor) Classify(ctx context.Context, text string) (entities.Intent, error) {
	content, err := e.complete(ctx, []llm.ChatMessage{
		{Role: "system", Content: classificationPrompt},
		{Role: "user", Content: text},
	})
	if err != nil {
		return entities.IntentRegularConversation, err
	}

	return entities.ParseIntent(content), nil
}

// ExtractComplaint pulls structured complaint fields out of a message
func (e *Extractor) ExtractComplaint(ctx context.Context, text string) (*complaintFields, error) {
	content, err := e.complete(ctx, []llm.ChatMessage{
		{Role: "system", Content: complaintExtractionPrompt},
		{Role: "user", Content: text},
	})
	if err != nil {
		return nil, err
	}

	return parseComplaintFields(content)
}

// ExtractComplaintID pulls the referenced complaint ID out of a status request
func (e *Extractor) ExtractComplaintID(ctx context.Context, text string) (string, error) {
	content, err := e.complete(ctx, []llm.ChatMessage{
		{Role: "system", Content: statusLookupPrompt},
		{Role: "user", Content: text},
	})
	if err != nil {
		return "", err
	}

	fields, err := parseIDFields(content)
	if err != nil {
		return "", err
	}

	return fields.ComplaintID, nil
}

// ExtractPreferenceChange pulls the complaint ID and desired update preference
// out of a message
func (e *Extractor) ExtractPreferenceChange(ctx context.Context, text string) (string, entities.NotifyPreference, error) {
	content, err := e.complete(ctx, []llm.ChatMessage{
		{Role: "system", Content: preferenceChangePrompt},
		{Role: "user", Content: text},
	})
	if err != nil {
		return "", "", err
	}

	fields, err := parseIDFields(content)
	if err != nil {
		return "", "", err
	}

	pref, err := entities.ParseNotifyPreference(fields.ReceiveUpdates)
	if err != nil {
		return "", "", err
	}

	return fields.ComplaintID, pref, nil
}

// Converse produces a free-form reply in the assistant's voice
func (e *Extractor) Converse(ctx context.Context, msg entities.InboundMessage, history []entities.ChatTurn) (string, error) {
	sender := msg.SenderName
	if sender == "" {
		sender = "a resident"
	}

	sentAt := msg.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	messages := make([]llm.ChatMessage, 0, len(history)+2)
	messages = append(messages, llm.ChatMessage{
		Role:    "system",
		Content: fmt.Sprintf(conversationSystemPrompt, sender, sentAt.Format("2006-01-02")),
	})

	for _, turn := range history {
		messages = append(messages, llm.ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.ChatMessage{Role: "user", Content: msg.Text})

	return e.complete(ctx, messages)
}
