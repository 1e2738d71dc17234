package stream

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"antcolony/internal/sim"

	"github.com/gorilla/websocket"
)

const writeWait = time.Second

// Controller is the part of the simulation spectators can steer.
type Controller interface {
	Controls() sim.ControlSettings
	ApplyControlSettings(settings sim.ControlSettings) sim.ControlSettings
}

// Hub keeps the connected spectators, pushes frames to all of them and
// applies the control messages they send.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader

	controller Controller
	logger     *slog.Logger
}

// NewHub returns a hub steering controller.
func NewHub(controller Controller, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1 << 16,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		controller: controller,
		logger:     logger,
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Len returns the number of connected spectators.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
			h.logger.Warn("dropping spectator", "remote", conn.RemoteAddr().String(), "err", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Broadcast sends snap to every spectator.
func (h *Hub) Broadcast(snap sim.Snapshot) {
	payload, err := MarshalFrame(FrameFromSnapshot(snap))
	if err != nil {
		h.logger.Error("unable to encode frame", "tick", snap.Tick, "err", err)
		return
	}
	h.broadcast(payload)
}

// BroadcastControl sends the control state to every spectator.
func (h *Hub) BroadcastControl(settings sim.ControlSettings) {
	payload, err := MarshalControl(ControlFromSettings(settings))
	if err != nil {
		h.logger.Error("unable to encode controls", "err", err)
		return
	}
	h.broadcast(payload)
}

// ServeHTTP upgrades the request to a websocket and serves the spectator
// until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	h.add(conn)
	defer h.remove(conn)

	remote := conn.RemoteAddr().String()
	h.logger.Info("spectator connected", "remote", remote)

	// new spectators learn the knob positions right away
	h.BroadcastControl(h.controller.Controls())

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			h.logger.Info("spectator disconnected", "remote", remote, "err", err)
			return
		}

		msg, err := Unmarshal(data)
		if err != nil {
			h.logger.Warn("unable to decode spectator message", "remote", remote, "err", err)
			continue
		}
		control := msg.GetControl()
		if control == nil {
			h.logger.Warn("ignoring non control message", "remote", remote)
			continue
		}

		applied := h.controller.ApplyControlSettings(SettingsFromControl(control))
		h.BroadcastControl(applied)
	}
}
