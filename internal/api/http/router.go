package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parlor-games/internal/api/ws"
	"parlor-games/internal/config"
	"parlor-games/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for live game updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.POST("/rooms/:code/join", JoinRoomHandler(rm))
	r.POST("/rooms/:code/start", StartHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/rooms/:code/move", MoveHandler(rm))
	r.POST("/rooms/:code/resign", ResignHandler(rm))

	// --- CONFIG / OPS ---
	r.GET("/config", GetConfigHandler(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
