package routes

import (
	"portfolio-backend/handlers/projects"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProjectsRoutes(r *gin.Engine, database *gorm.DB) {
	h := projects.NewHandler(database)

	r.GET("/projects", h.GetAllProjects)
	r.GET("/projects/:slug", h.GetProjectBySlug)
}
