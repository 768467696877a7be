package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ErrHubBusy is returned by Hub.Publish when the broadcast buffer is full
var ErrHubBusy = errors.New("change stream buffer full")

// HubConfig holds configuration for change stream connections
type HubConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	BroadcastBuffer int
	CheckOrigin     func(r *http.Request) bool
}

// DefaultHubConfig returns default websocket configuration
func DefaultHubConfig() HubConfig {
	return HubConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  512,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		BroadcastBuffer: 1000,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// Hub streams changes to websocket subscribers. It is a Publisher, so it can
// sit next to NATS behind a Fanout.
type Hub struct {
	clients map[*subscriber]bool
	mu      sync.RWMutex

	upgrader    websocket.Upgrader
	config      HubConfig
	broadcastCh chan Change
}

// subscriber is one websocket client, optionally filtered to a single entity
type subscriber struct {
	id     string
	entity string
	conn   *websocket.Conn
	send   chan []byte
	hub    *Hub
}

// NewHub creates a change stream hub; call Run to start broadcasting
func NewHub(config HubConfig) *Hub {
	return &Hub{
		clients: make(map[*subscriber]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan Change, config.BroadcastBuffer),
	}
}

// Run broadcasts published changes until ctx is cancelled, then closes every subscriber
func (h *Hub) Run(ctx context.Context) {
	log.Info().Msg("change stream hub started")
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			log.Info().Msg("change stream hub stopped")
			return
		case change := <-h.broadcastCh:
			h.broadcast(change)
		}
	}
}

// Publish queues change for broadcast without blocking the write path
func (h *Hub) Publish(_ context.Context, change Change) error {
	select {
	case h.broadcastCh <- change:
		return nil
	default:
		return ErrHubBusy
	}
}

// Subscribers returns the number of connected clients
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request to a websocket. The optional "entity" query
// parameter, e.g. ?entity=Match, limits the stream to one entity.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Warn().Err(err).Msg("failed to upgrade change stream connection")
		return
	}

	s := &subscriber{
		id:     uuid.NewString(),
		entity: r.URL.Query().Get("entity"),
		conn:   conn,
		send:   make(chan []byte, 64),
		hub:    h,
	}
	h.register(s)

	go s.writePump()
	go s.readPump()

	log.Info().Str("subscriber_id", s.id).Str("entity", s.entity).Msg("change stream subscriber connected")
}

func (h *Hub) register(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[s] = true
}

// unregister is safe to call more than once per subscriber
func (h *Hub) unregister(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[s]; ok {
		delete(h.clients, s)
		close(s.send)
		log.Info().Str("subscriber_id", s.id).Msg("change stream subscriber disconnected")
	}
}

func (h *Hub) closeAll() {
	h.mu.RLock()
	subscribers := make([]*subscriber, 0, len(h.clients))
	for s := range h.clients {
		subscribers = append(subscribers, s)
	}
	h.mu.RUnlock()

	for _, s := range subscribers {
		h.unregister(s)
	}
}

func (h *Hub) broadcast(change Change) {
	data, err := json.Marshal(change)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal change for broadcast")
		return
	}

	// sends happen under the read lock so unregister cannot close a channel mid-send
	var slow []*subscriber
	h.mu.RLock()
	for s := range h.clients {
		if s.entity != "" && s.entity != change.Entity {
			continue
		}
		select {
		case s.send <- data:
		default:
			slow = append(slow, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range slow {
		log.Warn().Str("subscriber_id", s.id).Msg("subscriber send buffer full, closing connection")
		h.unregister(s)
	}
}

// writePump sends queued changes and keepalive pings
func (s *subscriber) writePump() {
	ticker := time.NewTicker(s.hub.config.PingInterval)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
		s.hub.unregister(s)
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.hub.config.WriteTimeout))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Debug().Err(err).Str("subscriber_id", s.id).Msg("failed to write change")
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.hub.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only services pongs and close frames; the stream is one way
func (s *subscriber) readPump() {
	defer func() {
		s.hub.unregister(s)
		_ = s.conn.Close()
	}()

	s.conn.SetReadLimit(s.hub.config.MaxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(s.hub.config.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.hub.config.ReadTimeout))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("subscriber_id", s.id).Msg("unexpected change stream close")
			}
			return
		}
	}
}
