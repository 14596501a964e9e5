package routes

import (
	"portfolio-backend/handlers/comments"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CommentsRoutes(r *gin.Engine, database *gorm.DB) {
	h := comments.NewHandler(database)

	r.POST("/comments", h.CreateComment)
	r.GET("/comments", h.GetApprovedComments)
	r.GET("/comments/pending", h.GetPendingComments)
	r.PATCH("/comments/:id/approve", h.ApproveComment)
}
