package ws

import (
	"net/http"
	"sync"
	"time"

	"blog-service/internal/application/interfaces"
	"blog-service/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const writeWait = 5 * time.Second

// Handler streams live notifications of the authenticated user over a
// websocket. Every bus payload becomes one text frame.
type Handler struct {
	auth          interfaces.AuthService
	notifications interfaces.NotificationService
	upgrader      *websocket.Upgrader
	logger        zerolog.Logger

	conns   map[*websocket.Conn]struct{}
	connsMu sync.Mutex
}

func NewHandler(auth interfaces.AuthService, notifications interfaces.NotificationService, logger zerolog.Logger) *Handler {
	return &Handler{
		auth:          auth,
		notifications: notifications,
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger.With().Str("component", "notification_stream").Logger(),
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// Serve authenticates with the token query parameter. Browsers cannot set
// headers on a websocket handshake.
func (h *Handler) Serve(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return domain.Unauthenticated("not authenticated")
	}
	identity, err := h.auth.Authenticate(c.Request().Context(), token)
	if err != nil {
		return err
	}

	var (
		conn    *websocket.Conn
		writeMu sync.Mutex
		ready   = make(chan struct{})
	)
	unsubscribe, err := h.notifications.Stream(identity.UserID, func(payload []byte) {
		<-ready
		if conn == nil {
			return
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug().Err(err).Uint("user_id", identity.UserID).Msg("notification write failed")
		}
	})
	if err != nil {
		h.logger.Warn().Err(err).Uint("user_id", identity.UserID).Msg("notification stream unavailable")
		return echo.NewHTTPError(http.StatusServiceUnavailable, "notification stream unavailable")
	}
	defer func() {
		if err := unsubscribe(); err != nil {
			h.logger.Debug().Err(err).Msg("unsubscribe failed")
		}
	}()

	conn, err = h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	close(ready)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return nil
	}

	h.track(conn)
	defer h.untrack(conn)

	h.logger.Info().Uint("user_id", identity.UserID).Msg("notification stream opened")
	h.readUntilClosed(conn)
	h.logger.Info().Uint("user_id", identity.UserID).Msg("notification stream closed")
	return nil
}

// readUntilClosed drains client frames so that close and ping control
// messages are processed. It returns once the peer goes away.
func (h *Handler) readUntilClosed(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug().Err(err).Msg("websocket read failed")
			}
			return
		}
	}
}

func (h *Handler) track(conn *websocket.Conn) {
	h.connsMu.Lock()
	h.conns[conn] = struct{}{}
	h.connsMu.Unlock()
}

func (h *Handler) untrack(conn *websocket.Conn) {
	h.connsMu.Lock()
	delete(h.conns, conn)
	h.connsMu.Unlock()
	conn.Close()
}

// Close closes every open stream. The HTTP server does not track hijacked
// connections.
func (h *Handler) Close() {
	h.connsMu.Lock()
	defer h.connsMu.Unlock()

	for conn := range h.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
	}
}
