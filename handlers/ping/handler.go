package ping

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// HandlePing gère la logique de l'endpoint ping
// @Summary Ping test
// @Description Endpoint de test qui répond pong
// @Tags test
// @Produce json
// @Success 200 {object} map[string]string "message: pong"
// @Router /ping [get]
func (h *Handler) HandlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
