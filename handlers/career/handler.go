package career

import (
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

// @Summary Get the career timeline
// @Description Retrieve the career steps shown in the timeline carousel
// @Tags career
// @Produce json
// @Success 200 {array} models.CareerStep
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /career [get]
func (h *Handler) GetCareerSteps(c *gin.Context) {
	steps := []models.CareerStep{}
	err := h.db.Order("position ASC").Find(&steps).Error
	if err != nil {
		utils.LogError(err, "Error retrieving career steps")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur lors de la récupération du parcours",
		})
		return
	}

	c.JSON(http.StatusOK, steps)
}
