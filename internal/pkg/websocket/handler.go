package websocket

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Context keys set by the auth middleware
const (
	ContextUserID    = "userID"
	ContextSessionID = "sessionID"
)

// Handler for WebSocket connections
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler. Browser connections are only
// accepted from allowedOrigins; "*" allows any origin.
func NewHandler(hub *Hub, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || slices.Contains(allowedOrigins, "*") {
					return true
				}
				return slices.Contains(allowedOrigins, origin)
			},
		},
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Stream session state changes
// @Description Upgrades to a WebSocket that receives navigation, sidebar and logout events of the caller's session
// @Tags session, websocket
// @Security BearerAuth
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /session/events [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	sessionID := c.GetString(ContextSessionID)
	userID := c.GetInt64(ContextUserID)
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session not found in context",
		})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("sessionID", sessionID).
			Int64("userID", userID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:       h.hub,
		conn:      conn,
		send:      make(chan []byte, 32),
		userID:    userID,
		sessionID: sessionID,
		logger:    h.logger,
	}
	if !h.hub.Register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("sessionID", sessionID).
		Int64("userID", userID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
