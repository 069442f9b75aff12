package stream

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"core-bridge-controller/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	subscriberBuffer = 64
	writeTimeout     = 5 * time.Second
	pingInterval     = 30 * time.Second
)

// Hub fans out audit events to connected WebSocket clients. It implements
// ports.AuditBroadcaster. Delivery is best-effort: a subscriber whose buffer
// is full misses events rather than blocking the operation that emitted them.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}

	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewHub creates an audit stream hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subs: make(map[chan []byte]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: log.With().Str("component", "audit_stream").Logger(),
	}
}

// Broadcast sends an audit event to every connected subscriber.
func (h *Hub) Broadcast(event domain.AuditEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("event", string(event.Name)).Msg("failed to marshal audit event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- payload:
		default:
			// Subscriber buffer full; drop rather than block the caller.
		}
	}
}

// SubscriberCount reports the number of connected stream clients.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) subscribe() chan []byte {
	ch := make(chan []byte, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan []byte) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

// Handler upgrades the request to a WebSocket connection and streams audit
// events until the client disconnects.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade has already written the HTTP error response.
			return
		}
		defer conn.Close()

		ch := h.subscribe()
		defer h.unsubscribe(ch)

		h.log.Debug().Str("remote", c.Request.RemoteAddr).Msg("stream subscriber connected")

		// Reader goroutine: we never expect client messages, but reading is
		// required to detect disconnects and process control frames.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case payload := <-ch:
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
