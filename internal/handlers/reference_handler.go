package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitmarket/trainer-booking/internal/models"
)

// ReferenceHandler serves the lookup tables used by service forms.
type ReferenceHandler struct {
	db *gorm.DB
}

func NewReferenceHandler(db *gorm.DB) *ReferenceHandler {
	return &ReferenceHandler{db: db}
}

func (h *ReferenceHandler) Categories(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ReferenceHandler) Zones(c *gin.Context) {
	var zones []models.Zone
	if err := h.db.Order("name ASC").Find(&zones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_zones"})
		return
	}
	c.JSON(http.StatusOK, zones)
}

func (h *ReferenceHandler) Durations(c *gin.Context) {
	var durations []models.Duration
	if err := h.db.Order("minutes ASC").Find(&durations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_durations"})
		return
	}
	c.JSON(http.StatusOK, durations)
}
