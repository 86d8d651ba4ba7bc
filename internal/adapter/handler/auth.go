package handler

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/einsteinmuna/dialoguedesk/errors"
	authdto "github.com/einsteinmuna/dialoguedesk/internal/adapter/dto/auth"
	"github.com/einsteinmuna/dialoguedesk/pkg/config"
	"github.com/einsteinmuna/dialoguedesk/pkg/jwt"
)

// Auth issues staff tokens for the dashboard endpoints
type Auth struct {
	cfg        *config.Config
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(cfg *config.Config, jwtManager *jwt.Manager, logger *zap.Logger) *Auth {
	return &Auth{
		cfg:        cfg,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// IssueToken exchanges the shared dashboard access code for a staff JWT
func (h *Auth) IssueToken(c echo.Context) error {
	var req authdto.TokenRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	if subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(h.cfg.Dashboard.AccessCode)) != 1 {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	subject := req.Subject
	if subject == "" {
		subject = "dashboard"
	}

	token, err := h.jwtManager.GenerateStaffToken(subject)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(h.logger, c, authdto.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int(h.jwtManager.GetExpiry().Seconds()),
		TokenType:   "Bearer",
	})
}
