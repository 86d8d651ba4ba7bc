package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/einsteinmuna/dialoguedesk/pkg/jwt"
)

// EchoAuth returns an Echo middleware that validates a staff JWT and sets
// "staff_subject" and "staff_claims" into the Echo context
func EchoAuth(manager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c.Request())
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			claims, err := manager.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set("staff_subject", claims.Subject)
			c.Set("staff_claims", claims)

			return next(c)
		}
	}
}

// BotSecret returns an Echo middleware that checks the shared webhook secret
// on inbound bot traffic. An empty configured secret disables the check.
func BotSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret != "" && c.Request().Header.Get("X-Bot-Secret") != secret {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid webhook secret")
			}
			return next(c)
		}
	}
}

func extractToken(r *http.Request) string {
	// Expected format: "Bearer <token>"
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	cookie, err := r.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}

	return ""
}
