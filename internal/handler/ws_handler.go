package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/davsilvam/academic-api/internal/config"
	"github.com/davsilvam/academic-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams record-change events to the owning user over WebSocket.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// EventsStream godoc
// WS /ws/v1/events
// Upgrades to WebSocket and forwards the caller's record-change events as
// they are published. Clients only ever see their own channel.
func (h *WSHandler) EventsStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	channel := config.CacheKey.UserEventsChannel(claims.UserID)
	sub := h.rdb.Subscribe(c.Request.Context(), channel)
	defer sub.Close()

	wsLog := h.log.With().Str("user_id", claims.UserID.String()).Logger()
	wsLog.Info().Msg("Client connected")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Drain the read side to notice the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	events := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			wsLog.Debug().Msg("Connection closed")
			return
		case msg, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				wsLog.Warn().Err(err).Msg("Write event failed")
				return
			}
		}
	}
}
