package main

import (
	"log"
	"net/http"

	httpapi "parlor-games/internal/api/http"
	"parlor-games/internal/api/ws"
	"parlor-games/internal/config"
	"parlor-games/internal/room"
	"parlor-games/internal/store"

	// swagger packages
	_ "parlor-games/docs"

	"github.com/gin-gonic/gin"
)

// @title Parlor Games API
// @version 1.0
// @description REST + WebSocket API for the multi-variant game room server (Uno, chess, checkers)
// @contact.name Backend Team
// @contact.email backend@yourcompany.com
// @BasePath /
func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	rm := room.NewManager(mem, cfg, hub)
	hub.SetManager(rm)

	r := httpapi.NewRouter(rm, hub, cfg)

	// Optional: Add root redirect to swagger
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
