package projects

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

// @Summary Get all showcased projects
// @Description Retrieve the showcased projects in display order
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /projects [get]
func (h *Handler) GetAllProjects(c *gin.Context) {
	projects := []models.Project{}
	err := h.db.Order("position ASC").Find(&projects).Error
	if err != nil {
		utils.LogError(err, "Error retrieving projects")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération des projets",
		})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// @Summary Get a project by slug
// @Description Retrieve a single showcased project
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]string "error: Project not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /projects/{slug} [get]
func (h *Handler) GetProjectBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var project models.Project
	if err := h.db.First(&project, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Projet introuvable",
			})
			return
		}
		utils.LogError(err, "Error retrieving project")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération du projet",
		})
		return
	}

	c.JSON(http.StatusOK, project)
}
