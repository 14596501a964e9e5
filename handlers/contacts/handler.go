package contacts

import (
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/utils"
	mailsmodels "portfolio-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// @Summary Send a contact message
// @Description Submit a message from the contact form; the site owner is notified by mail
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactCreate true "Contact message"
// @Success 201 {object} map[string]interface{} "success, message, id"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /contact [post]
func (h *Handler) CreateContact(c *gin.Context) {
	var input models.ContactCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Tous les champs sont requis",
		})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "L'adresse email n'est pas valide",
		})
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := h.db.Create(&contact).Error; err != nil {
		utils.LogError(err, "Error creating contact")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Une erreur est survenue lors de l'envoi du message",
		})
		return
	}

	if utils.MailEnabled() {
		data := mailsmodels.ContactEmailData{
			Name:    contact.Name,
			Email:   contact.Email,
			Message: contact.Message,
		}
		go mailsmodels.ContactNotification(data)
		go mailsmodels.ContactConfirmation(data)
	}

	utils.LogSuccess("Contact message received from " + contact.Email)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message envoyé avec succès",
		"id":      contact.ID,
	})
}

// @Summary List contact messages
// @Description Retrieve all contact messages, newest first
// @Tags contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /contacts [get]
func (h *Handler) GetAllContacts(c *gin.Context) {
	contacts := []models.Contact{}
	err := h.db.Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		utils.LogError(err, "Error retrieving contacts")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération des messages",
		})
		return
	}

	c.JSON(http.StatusOK, contacts)
}
