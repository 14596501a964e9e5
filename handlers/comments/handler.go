package comments

import (
	"errors"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// @Summary Submit a comment on a project
// @Description Submit a new comment, held for moderation until approved
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body models.CommentCreate true "Comment to submit"
// @Success 201 {object} map[string]interface{} "success, message, id"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
	var input models.CommentCreate

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

	comment := models.Comment{
		ProjectSlug: input.ProjectSlug,
		Author:      input.Author,
		Email:       input.Email,
		Content:     input.Content,
		Approved:    false,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		utils.LogError(err, "Error creating comment")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Une erreur est survenue lors de l'envoi du commentaire",
		})
		return
	}

	utils.LogSuccess("Comment submitted on project " + comment.ProjectSlug)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Commentaire enregistré, en attente d'approbation",
		"id":      comment.ID,
	})
}

// @Summary List approved comments of a project
// @Description Retrieve the approved comments of a project, newest first
// @Tags comments
// @Produce json
// @Param projectSlug query string true "Project slug"
// @Success 200 {array} models.CommentView
// @Failure 400 {object} map[string]string "error: Missing project slug"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /comments [get]
func (h *Handler) GetApprovedComments(c *gin.Context) {
	projectSlug := c.Query("projectSlug")
	if projectSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Le slug du projet est requis",
		})
		return
	}

	// Le tri secondaire sur l'id rend l'ordre stable quand deux
	// commentaires partagent le même horodatage.
	comments := []models.CommentView{}
	err := h.db.Model(&models.Comment{}).
		Select("id", "author", "content", "created_at").
		Where("project_slug = ? AND approved = ?", projectSlug, true).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		utils.LogError(err, "Error retrieving comments")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération des commentaires",
		})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// @Summary List comments awaiting moderation
// @Description Retrieve all unapproved comments, oldest first
// @Tags comments
// @Produce json
// @Success 200 {array} models.Comment
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /comments/pending [get]
func (h *Handler) GetPendingComments(c *gin.Context) {
	comments := []models.Comment{}
	err := h.db.
		Where("approved = ?", false).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		utils.LogError(err, "Error retrieving pending comments")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération des commentaires",
		})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// ApproveComment rend un commentaire visible publiquement. L'opération est
// idempotente : approuver un commentaire déjà approuvé renvoie son état
// courant sans erreur.
//
// Aucune vérification d'identité n'est faite ici, comme sur le site
// d'origine. À trancher avant toute exposition publique de cette route.
//
// @Summary Approve a comment
// @Description Flip a pending comment to publicly visible
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} map[string]interface{} "success, message, comment"
// @Failure 404 {object} map[string]string "error: Comment not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /comments/{id}/approve [patch]
func (h *Handler) ApproveComment(c *gin.Context) {
	id := c.Param("id")

	var comment models.Comment
	if err := h.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Commentaire introuvable",
			})
			return
		}
		utils.LogError(err, "Error retrieving comment")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de l'approbation du commentaire",
		})
		return
	}

	if err := h.db.Model(&comment).Update("approved", true).Error; err != nil {
		utils.LogError(err, "Error approving comment")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de l'approbation du commentaire",
		})
		return
	}

	utils.LogSuccess("Comment " + comment.ID + " approved")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Commentaire approuvé",
		"comment": comment,
	})
}
