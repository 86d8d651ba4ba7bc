package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/einsteinmuna/dialoguedesk/internal/infrastructure/http/middleware"
	"github.com/einsteinmuna/dialoguedesk/pkg/config"
	"github.com/einsteinmuna/dialoguedesk/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	jwtManager     *jwt.Manager
	chatHandler    *Chat
	meetingHandler *Meeting
	authHandler    *Auth
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, jwtManager *jwt.Manager, chatHandler *Chat, meetingHandler *Meeting, authHandler *Auth) *Router {
	return &Router{
		cfg:            cfg,
		jwtManager:     jwtManager,
		chatHandler:    chatHandler,
		meetingHandler: meetingHandler,
		authHandler:    authHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	rt.setupChatRoutes(v1)
	rt.setupAuthRoutes(v1)
	rt.setupMeetingRoutes(v1)
}

// setupChatRoutes configures the bot message webhook
func (rt *Router) setupChatRoutes(g *echo.Group) {
	chatGroup := g.Group("/chat", middleware.BotSecret(rt.cfg.Bot.WebhookSecret))
	chatGroup.POST("/messages", rt.chatHandler.HandleMessage)
}

// setupAuthRoutes configures dashboard token issuance
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/token", rt.authHandler.IssueToken)
}

// setupMeetingRoutes configures the staff-facing meeting endpoints
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings", middleware.EchoAuth(rt.jwtManager))
	meetingGroup.POST("/upload", rt.meetingHandler.Upload)
	meetingGroup.GET("/metadata", rt.meetingHandler.Metadata)
	meetingGroup.GET("/search", rt.meetingHandler.Search)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
