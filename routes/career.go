package routes

import (
	"portfolio-backend/handlers/career"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CareerRoutes(r *gin.Engine, database *gorm.DB) {
	h := career.NewHandler(database)

	r.GET("/career", h.GetCareerSteps)
}
