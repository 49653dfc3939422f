package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/middleware"
	"github.com/fitmarket/trainer-booking/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	DurationID  uint    `json:"duration_id" binding:"required"`
	ZoneIDs     []uint  `json:"zones" binding:"required,min=1,max=3"`
	IsVirtual   *bool   `json:"is_virtual" binding:"required"`
	Published   *bool   `json:"published"`
}

type UpdateServiceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	DurationID  uint    `json:"duration_id" binding:"required"`
	ZoneIDs     []uint  `json:"zones" binding:"required,min=1,max=3"`
	IsVirtual   *bool   `json:"is_virtual" binding:"required"`
	Published   *bool   `json:"published"`
}

// --------- Helpers ---------

// loadZones resolves the requested zone ids, enforcing the 1..MaxZonesPerService
// bound independently of the binding tags.
func (h *ServiceHandler) loadZones(ids []uint) ([]models.Zone, bool) {
	if len(ids) == 0 || len(ids) > models.MaxZonesPerService {
		return nil, false
	}

	var zones []models.Zone
	if err := h.db.Where("id IN ?", ids).Find(&zones).Error; err != nil {
		return nil, false
	}
	return zones, len(zones) == len(ids)
}

// withRating attaches the average-rating aggregate to a services query.
func withRating(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Service{}).
		Select("services.*, COALESCE(AVG(reviews.rating), 0) AS average_rating").
		Joins("LEFT JOIN bookings ON bookings.service_id = services.id").
		Joins("LEFT JOIN reviews ON reviews.booking_id = bookings.id").
		Group("services.id")
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	zones, ok := h.loadZones(req.ZoneIDs)
	if !ok {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "unknown zone id")
		return
	}

	isVirtual := *req.IsVirtual
	svc := models.Service{
		TrainerID:    trainerID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		CategoryID:   req.CategoryID,
		DurationID:   req.DurationID,
		IsVirtual:    isVirtual,
		IsPresential: !isVirtual,
		Published:    true,
	}
	if req.Published != nil {
		svc.Published = *req.Published
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Zones").Create(&svc).Error; err != nil {
			return err
		}
		return tx.Model(&svc).Association("Zones").Replace(zones)
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.getAndRespond(c, svc.ID, http.StatusCreated)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.Where("id = ? AND trainer_id = ?", id, trainerID).First(&svc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	zones, ok := h.loadZones(req.ZoneIDs)
	if !ok {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "unknown zone id")
		return
	}

	isVirtual := *req.IsVirtual
	svc.Title = req.Title
	svc.Description = req.Description
	svc.Price = req.Price
	svc.CategoryID = req.CategoryID
	svc.DurationID = req.DurationID
	svc.IsVirtual = isVirtual
	svc.IsPresential = !isVirtual
	if req.Published != nil {
		svc.Published = *req.Published
	}

	// Zone set is replaced wholesale, never merged.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Zones").Save(&svc).Error; err != nil {
			return err
		}
		return tx.Model(&svc).Association("Zones").Replace(zones)
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.getAndRespond(c, svc.ID, http.StatusOK)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.Where("id = ? AND trainer_id = ?", id, trainerID).First(&svc).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Service not found.")
		return
	}

	if err := h.db.Select(clause.Associations).Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "service_deleted"})
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid service id.")
		return
	}
	h.getAndRespond(c, uint(id), http.StatusOK)
}

func (h *ServiceHandler) getAndRespond(c *gin.Context, id uint, status int) {
	var svc models.Service
	if err := withRating(h.db).
		Preload("Trainer").
		Preload("Category").
		Preload("Duration").
		Preload("Zones").
		Where("services.id = ?", id).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Service not found.")
		return
	}
	c.JSON(status, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	q := withRating(h.db).
		Preload("Trainer").
		Preload("Category").
		Preload("Duration").
		Preload("Zones").
		Where("services.published = ?", true)

	if v := c.Query("category_id"); v != "" {
		q = q.Where("services.category_id = ?", v)
	}
	if v := c.Query("duration_id"); v != "" {
		q = q.Where("services.duration_id = ?", v)
	}
	if v := c.Query("zone_id"); v != "" {
		q = q.Joins("JOIN service_zones ON service_zones.service_id = services.id").
			Where("service_zones.zone_id = ?", v)
	}
	if v := c.Query("is_virtual"); v != "" {
		q = q.Where("services.is_virtual = ?", v == "true")
	}
	if v := c.Query("is_presential"); v != "" {
		q = q.Where("services.is_presential = ?", v == "true")
	}
	if v := c.Query("trainer_id"); v != "" {
		q = q.Where("services.trainer_id = ?", v)
	}

	switch c.Query("order_by") {
	case "price_asc":
		q = q.Order("services.price ASC")
	case "price_desc":
		q = q.Order("services.price DESC")
	case "rating_asc":
		q = q.Order("average_rating ASC")
	case "rating_desc":
		q = q.Order("average_rating DESC")
	case "newest":
		q = q.Order("services.created_at DESC")
	default:
		q = q.Order("services.id ASC")
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}
