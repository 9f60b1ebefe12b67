package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schedulocity/internal/app/models"
	"github.com/yigit/schedulocity/internal/app/models/dto"
	"github.com/yigit/schedulocity/internal/app/services"
	"github.com/yigit/schedulocity/internal/pkg/apperrors"
	"github.com/yigit/schedulocity/internal/pkg/auth"
	"github.com/yigit/schedulocity/internal/pkg/websocket"
)

// Context and cookie keys
const (
	ContextActor     = "actor"
	ContextUserID    = websocket.ContextUserID
	ContextSessionID = websocket.ContextSessionID

	// CookieSessionKey is the signed-cookie entry holding the session id
	CookieSessionKey = "sessionId"
)

// AuthMiddleware for authentication and view authorization
type AuthMiddleware struct {
	jwtService     *auth.JWTService
	sessionService services.SessionService
	logger         zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, sessionService services.SessionService, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:     jwtService,
		sessionService: sessionService,
		logger:         logger,
	}
}

// RequireSession resolves the caller's session from a Bearer token or, when
// no token is sent, from the session cookie
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			sessionID string
			userID    int64
		)

		authHeader := c.GetHeader("Authorization")
		// Browsers cannot set headers on websocket upgrades
		if authHeader == "" && websocketUpgrade(c) {
			authHeader = c.Query("token")
		}

		if authHeader != "" {
			tokenString, err := auth.ExtractBearerToken(authHeader)
			if err != nil {
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token format")
				return
			}
			claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
					return
				}
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
				return
			}
			sessionID, userID = claims.SessionID, claims.UserID
		} else if id, ok := sessions.Default(c).Get(CookieSessionKey).(string); ok {
			sessionID = id
		}

		if sessionID == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authorization header missing")
			return
		}

		actor, err := m.sessionService.Authenticate(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrSessionNotFound) {
				abortUnauthorized(c, dto.ErrorCodeTokenNotFound, "Session expired or signed out")
				return
			}
			m.logger.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to load session")
			HandleAPIError(c, err)
			c.Abort()
			return
		}
		// A token only authenticates the session it was issued for.
		if userID != 0 && actor.User.ID != userID {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Token does not match session")
			return
		}

		c.Set(ContextActor, actor)
		c.Set(ContextUserID, actor.User.ID)
		c.Set(ContextSessionID, actor.SessionID)
		c.Next()
	}
}

// ViewRequired lets the request through when the actor's role may render at
// least one of views. Otherwise it answers 403 with the view to fall back to.
func (m *AuthMiddleware) ViewRequired(views ...models.ViewID) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "User information not found")
			return
		}

		for _, v := range views {
			if actor.Policy.Allows(v) {
				c.Next()
				return
			}
		}

		requested := models.ViewDashboard
		if len(views) > 0 {
			requested = views[0]
		}
		m.logger.Debug().
			Int64("userID", actor.User.ID).
			Str("role", string(actor.User.Role)).
			Str("view", string(requested)).
			Msg("View not permitted for role")

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails(gin.H{
			"view":         requested,
			"fallbackView": actor.Policy.Resolve(requested),
		})
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// GetActor returns the actor set by RequireSession
func GetActor(c *gin.Context) (*services.Actor, bool) {
	value, exists := c.Get(ContextActor)
	if !exists {
		return nil, false
	}
	actor, ok := value.(*services.Actor)
	return actor, ok && actor != nil
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Authentication required")
	errorDetail = errorDetail.WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

func websocketUpgrade(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("Upgrade"), "websocket")
}
