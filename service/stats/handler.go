package stats

import (
	"github.com/QuangTung97/minicrm/pkg/httputil"
	"github.com/QuangTung97/minicrm/pkg/util"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"net/http"
	"time"
)

const writeWait = 10 * time.Second

// Handler serves the snapshot over HTTP and WebSocket
type Handler struct {
	cache       *Cache
	broadcaster *Broadcaster
	timer       util.Timer
	logger      *zap.Logger
	upgrader    websocket.Upgrader
}

// NewHandler ...
func NewHandler(cache *Cache, broadcaster *Broadcaster, timer util.Timer, logger *zap.Logger) *Handler {
	return &Handler{
		cache:       cache,
		broadcaster: broadcaster,
		timer:       timer,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Routes ...
func (h *Handler) Routes(r chi.Router) {
	r.Get("/api/stats", h.getStats)
	r.Get("/api/stats/stream", h.stream)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.cache.RefreshIfStale(r.Context(), h.timer.Now())
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "stats unavailable")
		return
	}
	httputil.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Upgrade stats stream", zap.Error(err))
		return
	}

	ch, cancel := h.broadcaster.Subscribe()

	c := &streamClient{
		conn:   conn,
		send:   ch,
		cancel: cancel,
	}
	if snapshot, ok := h.cache.Get(); ok {
		c.initial = &snapshot
	}

	go c.readPump()
	c.writePump()
}

type streamClient struct {
	conn    *websocket.Conn
	send    <-chan Snapshot
	cancel  func()
	initial *Snapshot
}

// readPump only detects the peer going away
func (c *streamClient) readPump() {
	defer c.cancel()
	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
	}
}

func (c *streamClient) write(snapshot Snapshot) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(snapshot)
}

func (c *streamClient) writePump() {
	defer func() {
		c.cancel()
		_ = c.conn.Close()
	}()

	if c.initial != nil {
		if err := c.write(*c.initial); err != nil {
			return
		}
	}

	for snapshot := range c.send {
		if err := c.write(snapshot); err != nil {
			return
		}
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
