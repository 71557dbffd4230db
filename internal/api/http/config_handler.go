package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parlor-games/internal/config"
	"parlor-games/internal/engine"
)

// @Summary Get server configuration
// @Description Returns the supported game variants and the active turn timeout
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config [get]
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"variants": []engine.Variant{
				engine.VariantUno,
				engine.VariantChess,
				engine.VariantCheckers,
			},
			"turnTimeoutSeconds": int(cfg.TurnTimeout.Seconds()),
		})
	}
}
