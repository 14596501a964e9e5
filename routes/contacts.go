package routes

import (
	"portfolio-backend/handlers/contacts"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ContactsRoutes(r *gin.Engine, database *gorm.DB) {
	h := contacts.NewHandler(database)

	r.POST("/contact", h.CreateContact)
	r.GET("/contacts", h.GetAllContacts)
}
