package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"parlor-games/internal/engine"
)

type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]struct{}

	// set after construction to break the hub <-> manager cycle
	manager   RoomManager
	managerMu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) SetManager(m RoomManager) {
	h.managerMu.Lock()
	defer h.managerMu.Unlock()
	h.manager = m
}

func (h *Hub) roomManager() RoomManager {
	h.managerMu.RLock()
	defer h.managerMu.RUnlock()
	return h.manager
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// MoveEnvelope is the wire format for a move submission.
type MoveEnvelope struct {
	GameID    string      `json:"gameId"`
	PlayerID  string      `json:"playerId"`
	Move      engine.Move `json:"move"`
	Timestamp int64       `json:"timestamp"`
}

type inbound struct {
	Action   string       `json:"action"`
	Envelope MoveEnvelope `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Error reading WebSocket message: %v", err)
			break
		}

		rm := h.roomManager()
		if rm == nil {
			continue
		}

		switch msg.Action {
		case "move":
			env := msg.Envelope
			if env.GameID == "" {
				env.GameID = roomCode
			}
			if env.Timestamp == 0 {
				env.Timestamp = time.Now().Unix()
			}
			if _, err := rm.SubmitMove(env.GameID, env.PlayerID, env.Move); err != nil {
				h.sendError(conn, err)
			}
		case "resign":
			if _, err := rm.Resign(roomCode, msg.Envelope.PlayerID); err != nil {
				h.sendError(conn, err)
			}
		default:
			log.Printf("Unknown action: %s", msg.Action)
		}
	}
}

func (h *Hub) sendError(conn *websocket.Conn, err error) {
	msg := map[string]interface{}{
		"action": "error",
		"data":   gin.H{"error": err.Error()},
	}
	if werr := conn.WriteJSON(msg); werr != nil {
		log.Printf("Failed to send error: %v", werr)
	}
}

// Broadcast fans an event out to every connection in the room.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.RLock()
	clients, ok := h.rooms[roomCode]
	if !ok {
		h.mu.RUnlock()
		return
	}
	conns := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	var dead []*websocket.Conn
	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			dead = append(dead, conn)
		}
	}
	if len(dead) > 0 {
		h.mu.Lock()
		for _, conn := range dead {
			delete(h.rooms[roomCode], conn)
		}
		h.mu.Unlock()
	}
}
