package ws

import (
	"context"
	"sync"

	"jobsync/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type outbound struct {
	to   uuid.UUID
	data []byte
}

// Hub fans insight events out to the connected clients of their recipient.
type Hub struct {
	clients   map[*Client]bool
	stopped   bool
	broadcast chan outbound
	done      chan struct{}
	mutex     sync.RWMutex
	logger    *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:   make(map[*Client]bool),
		broadcast: make(chan outbound, 1024),
		done:      make(chan struct{}),
		logger:    logger.OrNop(log).Named("ws"),
	}
}

// Run delivers published events until ctx is done, then closes every client.
// Register, Unregister and Publish never block once Run has returned.
func (h *Hub) Run(ctx context.Context) {
	defer h.stop()

	for {
		select {
		case <-ctx.Done():
			return

		case msg := <-h.broadcast:
			delivered := 0
			h.mutex.Lock()
			for client := range h.clients {
				if client.userID != msg.to {
					continue
				}
				select {
				case client.send <- msg.data:
					delivered++
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mutex.Unlock()
			h.logger.Debug("event delivered", zap.Int("clients", delivered))
		}
	}
}

func (h *Hub) stop() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	close(h.done)
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// Register reports false when the hub has stopped; the caller owns the
// connection in that case.
func (h *Hub) Register(client *Client) bool {
	if h == nil || client == nil {
		return false
	}
	h.mutex.Lock()
	if h.stopped {
		h.mutex.Unlock()
		return false
	}
	h.clients[client] = true
	total := len(h.clients)
	h.mutex.Unlock()

	h.logger.Debug("client connected", zap.Int("total_clients", total))
	return true
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()

	h.logger.Debug("client disconnected", zap.Int("total_clients", total))
}

// Publish queues data for every client authenticated as the recipient.
func (h *Hub) Publish(to uuid.UUID, data []byte) {
	if h == nil || to == uuid.Nil {
		return
	}
	select {
	case <-h.done:
		return
	default:
	}
	select {
	case h.broadcast <- outbound{to: to, data: data}:
	default:
		h.logger.Warn("event dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
