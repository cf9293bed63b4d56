package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/talgya/beeworld/internal/engine"
)

const defaultWriteWait = 10 * time.Second

// Stream broadcasts per-tick snapshots to WebSocket subscribers. The
// engine publishes from its own goroutine; a broadcaster goroutine
// fans snapshots out so slow clients can never stall the simulation.
type Stream struct {
	upgrader  websocket.Upgrader
	broadcast chan engine.Snapshot
	writeWait time.Duration

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

// NewStream creates the hub and starts its broadcaster.
func NewStream() *Stream {
	return newStream(defaultWriteWait)
}

func newStream(writeWait time.Duration) *Stream {
	s := &Stream{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		broadcast: make(chan engine.Snapshot, 64),
		writeWait: writeWait,
		clients:   make(map[*websocket.Conn]bool),
	}
	go s.run()
	return s
}

// Publish queues a snapshot for broadcast. Drops the snapshot when the
// queue is full rather than blocking the tick loop.
func (s *Stream) Publish(snap engine.Snapshot) {
	select {
	case s.broadcast <- snap:
	default:
	}
}

// HandleWS upgrades a connection and registers it for snapshots.
func (s *Stream) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	slog.Info("live stream client connected", "remote", conn.RemoteAddr())

	go s.readPump(conn)
}

// readPump drains inbound frames so close and ping control frames are
// processed; subscribers never send data we care about. Exits when the
// client goes away and unregisters it.
func (s *Stream) readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.NextReader(); err != nil {
			s.remove(conn)
			slog.Debug("live stream client disconnected", "error", err)
			return
		}
	}
}

func (s *Stream) run() {
	for snap := range s.broadcast {
		// Copy the connection set so writes happen outside the lock;
		// a stalled client must not block registration.
		s.mu.RLock()
		conns := make([]*websocket.Conn, 0, len(s.clients))
		for conn := range s.clients {
			conns = append(conns, conn)
		}
		s.mu.RUnlock()

		for _, conn := range conns {
			conn.SetWriteDeadline(time.Now().Add(s.writeWait))
			if err := conn.WriteJSON(snap); err != nil {
				slog.Debug("live stream client dropped", "error", err)
				s.remove(conn)
			}
		}
	}
}

func (s *Stream) remove(conn *websocket.Conn) {
	s.mu.Lock()
	if s.clients[conn] {
		delete(s.clients, conn)
		conn.Close()
	}
	s.mu.Unlock()
}
