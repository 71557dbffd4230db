package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"parlor-games/internal/engine"
	"parlor-games/internal/room"
)

// @Summary Create new room
// @Description Create a room for one of the supported game variants
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Variant and creator name"
// @Success 200 {object} map[string]interface{}
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		r, err := rm.CreateRoom(req.Variant, req.PlayerName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"roomCode": r.Code, "room": r})
	}
}

// @Summary Join a room
// @Description Join an existing room while it is still in the lobby
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body http.JoinRoomRequest true "Player name"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/join [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		r, p, err := rm.JoinRoom(c.Param("code"), req.PlayerName)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"player": p, "room": r})
	}
}

// @Summary Start the game
// @Description Deal the initial state and open play
// @Tags Game
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/start [post]
func StartHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Start(c.Param("code"))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// @Summary Get room state
// @Tags Game
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// @Summary Submit a move
// @Description Validate and apply one move for the player on turn
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body http.MoveRequest true "Move payload"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerId required"})
			return
		}
		mv := engine.Move{
			PlayerID: req.PlayerID,
			Uno:      req.Uno,
			Chess:    req.Chess,
			Checkers: req.Checkers,
		}
		r, err := rm.SubmitMove(c.Param("code"), req.PlayerID, mv)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

// @Summary Resign
// @Description Forfeit the game for the given player
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param request body http.ResignRequest true "Resigning player"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/resign [post]
func ResignHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResignRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerId required"})
			return
		}
		r, err := rm.Resign(c.Param("code"), req.PlayerID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": r})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrNotYourTurn), errors.Is(err, room.ErrIllegalMove):
		return http.StatusBadRequest
	case errors.Is(err, room.ErrRoomFull), errors.Is(err, room.ErrNotInLobby),
		errors.Is(err, room.ErrNotPlaying), errors.Is(err, room.ErrNotEnough):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
