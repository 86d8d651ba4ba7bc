package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/einsteinmuna/dialoguedesk/internal/infrastructure/http/middleware"
	"github.com/einsteinmuna/dialoguedesk/internal/usecase/chat"
	"github.com/einsteinmuna/dialoguedesk/pkg/config"
	"github.com/einsteinmuna/dialoguedesk/pkg/jwt"
	"github.com/einsteinmuna/dialoguedesk/pkg/llm"
	pkgvalidator "github.com/einsteinmuna/dialoguedesk/pkg/validator"
)

// scriptedCompleter replays responses in order
type scriptedCompleter struct {
	responses []string
}

func (s *scriptedCompleter) Complete(_ context.Context, _ []llm.ChatMessage) (string, error) {
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func newTestEcho(t *testing.T, completer chat.Completer, webhookSecret string) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Environment = "test"
	cfg.Bot.WebhookSecret = webhookSecret
	cfg.Dashboard.AccessCode = "open-sesame"

	logger := zap.NewNop()
	jwtManager := jwt.NewManager("test-secret", time.Hour)

	chatService := chat.NewService(chat.NewExtractor(completer), nil, nil, logger)
	chatHandler := NewChat(chatService, logger)
	authHandler := NewAuth(cfg, jwtManager, logger)

	e := echo.New()
	e.Validator = pkgvalidator.New()

	v1 := e.Group("/v1")
	chatGroup := v1.Group("/chat", middleware.BotSecret(cfg.Bot.WebhookSecret))
	chatGroup.POST("/messages", chatHandler.HandleMessage)
	v1.Group("/auth").POST("/token", authHandler.IssueToken)

	return e
}

func TestHandleMessage_ReturnsReply(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		"regular_conversation",
		"Hi! How can I help?",
	}}
	e := newTestEcho(t, completer, "")

	body := `{"text":"hello","sender_name":"Amara"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hi! How can I help?")
}

func TestHandleMessage_EmptyTextRejected(t *testing.T) {
	e := newTestEcho(t, &scriptedCompleter{}, "")

	req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"text":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMessage_RequiresWebhookSecret(t *testing.T) {
	e := newTestEcho(t, &scriptedCompleter{}, "hunter2")

	req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIssueToken(t *testing.T) {
	e := newTestEcho(t, &scriptedCompleter{}, "")

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", strings.NewReader(`{"access_code":"open-sesame"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
}

func TestIssueToken_WrongCode(t *testing.T) {
	e := newTestEcho(t, &scriptedCompleter{}, "")

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", strings.NewReader(`{"access_code":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
