package room

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parlor-games/internal/config"
	"parlor-games/internal/engine"
	"parlor-games/internal/metrics"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
	ErrNotInLobby   = errors.New("room is not accepting players")
	ErrNotPlaying   = errors.New("game is not in progress")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNotEnough    = errors.New("not enough players to start")
)

// maxPlayers caps the roster per variant. Uno takes a table of up to ten.
func maxPlayers(v engine.Variant) int {
	if v == engine.VariantUno {
		return 10
	}
	return 2
}

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub}
}

func (m *Manager) CreateRoom(variant engine.Variant, creatorName string) (*Room, error) {
	switch variant {
	case engine.VariantUno, engine.VariantChess, engine.VariantCheckers:
	default:
		return nil, engine.ErrUnknownVariant
	}
	r := &Room{
		Code:      randCode(m.cfg.RoomCodeLength),
		Variant:   variant,
		Status:    StatusLobby,
		CreatedAt: time.Now(),
		Players:   []Player{{ID: uuid.NewString(), Name: creatorName}},
	}
	m.store.SaveRoom(r)
	metrics.RoomsCreated.WithLabelValues(string(variant)).Inc()
	return r, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) JoinRoom(code, playerName string) (*Room, Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, Player{}, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Status != StatusLobby {
		return nil, Player{}, ErrNotInLobby
	}
	if len(r.Players) >= maxPlayers(r.Variant) {
		return nil, Player{}, ErrRoomFull
	}
	p := Player{ID: uuid.NewString(), Name: playerName}
	r.Players = append(r.Players, p)
	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, "player_joined", gin.H{
		"player": p,
		"room":   r,
	})
	return r, p, nil
}

// Start deals the initial state and opens play.
func (m *Manager) Start(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Status != StatusLobby {
		return nil, ErrNotInLobby
	}
	if len(r.Players) < 2 {
		return nil, ErrNotEnough
	}
	state, err := engine.New(r.Variant, r.playerIDs(), time.Now().UnixNano())
	if err != nil {
		return nil, err
	}
	r.State = state
	r.Status = StatusPlaying
	m.armTurnTimer(r)
	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, "game_started", gin.H{"room": r})
	return r, nil
}

// SubmitMove validates and applies one move. The room lock makes this the
// single mutation point per game instance.
func (m *Manager) SubmitMove(code, playerID string, mv engine.Move) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Status != StatusPlaying {
		return nil, ErrNotPlaying
	}
	if r.State.CurrentPlayer != playerID {
		return nil, ErrNotYourTurn
	}
	mv.PlayerID = playerID

	if !engine.Validate(r.State, mv) {
		metrics.Moves.WithLabelValues(string(r.Variant), "rejected").Inc()
		return nil, ErrIllegalMove
	}
	r.State = engine.Apply(r.State, mv)
	metrics.Moves.WithLabelValues(string(r.Variant), "accepted").Inc()

	if res := engine.IsGameOver(r.State); res.IsOver {
		m.finishLocked(r, res.Winner, res.IsDraw, "game_complete")
		return r, nil
	}

	m.armTurnTimer(r)
	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, "move", gin.H{
		"playerId": playerID,
		"state":    r.State,
		"nextTurn": r.State.CurrentPlayer,
	})
	return r, nil
}

// Resign forfeits the game for playerID; the next seat in turn order wins.
func (m *Manager) Resign(code, playerID string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Status != StatusPlaying {
		return nil, ErrNotPlaying
	}
	winner := nextAfter(r.State.Players, playerID)
	m.finishLocked(r, winner, false, "resignation")
	return r, nil
}

// armTurnTimer replaces the running timer with one for the player now on
// turn. Expiry forfeits the slow player. The timer lives outside the
// engine: a timeout is just another externally triggered game-ending event.
func (m *Manager) armTurnTimer(r *Room) {
	if r.turnTimer != nil {
		r.turnTimer.Stop()
	}
	if m.cfg.TurnTimeout <= 0 {
		return
	}
	onTurn := r.State.CurrentPlayer
	code := r.Code
	r.turnTimer = time.AfterFunc(m.cfg.TurnTimeout, func() {
		m.expireTurn(code, onTurn)
	})
}

func (m *Manager) expireTurn(code, playerID string) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// Stale timer: the move landed or the game already ended.
	if r.Status != StatusPlaying || r.State.CurrentPlayer != playerID {
		return
	}
	log.Printf("room %s: %s timed out", code, playerID)
	winner := nextAfter(r.State.Players, playerID)
	m.finishLocked(r, winner, false, "timeout")
}

// finishLocked ends the game. The caller holds the room lock.
func (m *Manager) finishLocked(r *Room, winner string, draw bool, reason string) {
	if r.turnTimer != nil {
		r.turnTimer.Stop()
	}
	r.Status = StatusFinished
	r.State.Winner = winner
	r.State.IsDraw = draw
	m.store.SaveRoom(r)

	label := reason
	if draw {
		label = "draw"
	}
	metrics.GamesFinished.WithLabelValues(string(r.Variant), label).Inc()
	m.hub.Broadcast(r.Code, "game_over", gin.H{
		"winner": winner,
		"isDraw": draw,
		"reason": reason,
		"state":  r.State,
	})
}

func nextAfter(players []string, id string) string {
	for i, p := range players {
		if p == id {
			return players[(i+1)%len(players)]
		}
	}
	if len(players) > 0 {
		return players[0]
	}
	return ""
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
