package ws

import (
	"parlor-games/internal/engine"
	"parlor-games/internal/room"
)

// RoomManager is the slice of the room manager the hub drives.
type RoomManager interface {
	SubmitMove(code, playerID string, mv engine.Move) (*room.Room, error)
	Resign(code, playerID string) (*room.Room, error)
}
