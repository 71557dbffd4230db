package http

import "parlor-games/internal/engine"

// CreateRoomRequest represents the payload for /rooms.
type CreateRoomRequest struct {
	Variant    engine.Variant `json:"variant"`
	PlayerName string         `json:"playerName"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// MoveRequest represents a player move. Exactly one of the per-variant
// payloads must be set, matching the room's variant.
type MoveRequest struct {
	PlayerID string               `json:"playerId"`
	Uno      *engine.UnoMove      `json:"uno,omitempty"`
	Chess    *engine.ChessMove    `json:"chess,omitempty"`
	Checkers *engine.CheckersMove `json:"checkers,omitempty"`
}

// ResignRequest represents a forfeit.
type ResignRequest struct {
	PlayerID string `json:"playerId"`
}
