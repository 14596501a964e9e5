package routes

import (
	"portfolio-backend/handlers/ping"

	"github.com/gin-gonic/gin"
)

func PingRoutes(r *gin.Engine) {
	h := ping.New()

	r.GET("/ping", h.HandlePing)
}
