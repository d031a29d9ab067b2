package handlers

import (
	"net/http"
	"strings"
	"time"

	"anchor-sim/internal/api/models"
	"anchor-sim/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

// StreamHandler pushes session snapshots over a websocket.
// It polls the session and sends a frame whenever the version changes.
type StreamHandler struct {
	sessions *data.SessionCache
	interval time.Duration
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewStreamHandler accepts upgrades from the listed origins. An empty list,
// or a request without an Origin header, is allowed.
func NewStreamHandler(sessions *data.SessionCache, interval time.Duration, origins []string, logger *zap.Logger) *StreamHandler {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &StreamHandler{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(origins),
		},
	}
}

// Stream handles GET /api/v1/sessions/:id/stream
func (h *StreamHandler) Stream(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		writeSessionError(c, err)
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	log := h.logger.With(zap.String("session", s.ID()), zap.String("remote", c.ClientIP()))
	log.Debug("stream opened")

	// Clients never send anything we act on; reading only detects the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var last uint64
	sent := false
	for {
		snap := s.Snapshot()
		if !sent || snap.Version != last {
			resp := toSnapshotResponse(snap)
			frame := models.StreamFrame{Type: "snapshot", Data: &resp}
			if snap.Closed {
				frame.Type = "closed"
			}
			if err := h.write(conn, frame); err != nil {
				log.Debug("stream write", zap.Error(err))
				return
			}
			last, sent = snap.Version, true
		}
		if snap.Closed {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
				time.Now().Add(writeWait))
			return
		}

		select {
		case <-done:
			log.Debug("stream closed by client")
			return
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

func originChecker(origins []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if len(origins) == 0 || origin == "" {
			return true
		}
		for _, o := range origins {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}

func (h *StreamHandler) write(conn *websocket.Conn, frame models.StreamFrame) error {
	raw, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, raw)
}
