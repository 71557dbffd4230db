package room

import (
	"sync"
	"time"

	"parlor-games/internal/engine"
)

const (
	StatusLobby    = "lobby"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room is one game instance. Its mutex is the serialization point required
// by the engine: at most one mutation is in flight per room.
type Room struct {
	Code      string         `json:"code"`
	Variant   engine.Variant `json:"variant"`
	Players   []Player       `json:"players"`
	State     *engine.State  `json:"state,omitempty"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`

	mu        sync.Mutex
	turnTimer *time.Timer
}

// PlayerName resolves a player id to its display name.
func (r *Room) PlayerName(id string) string {
	for _, p := range r.Players {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

func (r *Room) playerIDs() []string {
	ids := make([]string, len(r.Players))
	for i, p := range r.Players {
		ids[i] = p.ID
	}
	return ids
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}
