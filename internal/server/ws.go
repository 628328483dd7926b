package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/magefree/mage-layers-go/internal/game"
	"github.com/magefree/mage-layers-go/internal/game/continuous"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // inspector is a local debugging surface
	},
}

// WSMessage is the envelope for inspector messages in both directions.
type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Client is one connected inspector.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans computed-characteristics snapshots out to connected inspectors.
type Hub struct {
	logger *zap.Logger

	state    *game.State
	manager  *continuous.Manager
	pipeline *continuous.Pipeline

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub creates a hub over the given game state and effect manager.
func NewHub(
	state *game.State,
	manager *continuous.Manager,
	pipeline *continuous.Pipeline,
	logger *zap.Logger,
) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		logger:     logger,
		state:      state,
		manager:    manager,
		pipeline:   pipeline,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Run processes client lifecycle and broadcasts until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("inspector connected")
			client.send <- h.snapshotMessage()

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("inspector disconnected")
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastSnapshot recomputes characteristics and pushes them to every
// connected inspector. Call after any state or effect change.
func (h *Hub) BroadcastSnapshot() {
	h.broadcast <- h.snapshotMessage()
}

func (h *Hub) snapshotMessage() []byte {
	snapshot := BuildSnapshot(h.state, h.manager, h.pipeline)
	payload, err := json.Marshal(WSMessage{Type: "snapshot", Data: snapshot})
	if err != nil {
		h.logger.Error("marshaling snapshot", zap.Error(err))
		return []byte(`{"type":"error"}`)
	}
	return payload
}

func (h *Hub) handleMessage(client *Client, msg WSMessage) {
	switch msg.Type {
	case "snapshot":
		client.send <- h.snapshotMessage()

	case "end_turn":
		h.manager.EndTurn()
		h.BroadcastSnapshot()

	default:
		h.logger.Debug("ignoring unknown message", zap.String("type", msg.Type))
	}
}

func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			hub.logger.Debug("malformed message", zap.Error(err))
			continue
		}
		hub.handleMessage(c, msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// ServeWS upgrades an HTTP request and registers the client with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

// Start serves the websocket endpoint at /ws on the given address. It blocks
// until the listener fails.
func Start(address string, hub *Hub, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)

	logger.Info("inspector listening", zap.String("address", address))
	return http.ListenAndServe(address, mux)
}
