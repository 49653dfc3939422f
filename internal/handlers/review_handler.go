package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainreview "github.com/fitmarket/trainer-booking/internal/domain/review"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/httpresp"
	"github.com/fitmarket/trainer-booking/internal/middleware"
	"github.com/fitmarket/trainer-booking/internal/models"
	ucreview "github.com/fitmarket/trainer-booking/internal/usecase/review"
)

type reviewCreator interface {
	Execute(ctx context.Context, in ucreview.CreateReviewInput) (*models.Review, error)
}

type reviewReplier interface {
	Execute(ctx context.Context, reviewID, trainerID uint, reply string) (*models.Review, error)
}

type reviewManager interface {
	Update(ctx context.Context, in ucreview.UpdateReviewInput) (*models.Review, error)
	Delete(ctx context.Context, reviewID, callerID uint) error
}

type reviewReader interface {
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	ListByService(ctx context.Context, serviceID uint) ([]models.Review, error)
	ListByTrainer(ctx context.Context, trainerID uint) ([]models.Review, error)
	ServiceStats(ctx context.Context, serviceID uint) (*domainreview.ServiceStats, error)
}

type ReviewHandler struct {
	create  reviewCreator
	reply   reviewReplier
	manage  reviewManager
	queries reviewReader
}

func NewReviewHandler(
	create reviewCreator,
	reply reviewReplier,
	manage reviewManager,
	queries reviewReader,
) *ReviewHandler {
	return &ReviewHandler{
		create:  create,
		reply:   reply,
		manage:  manage,
		queries: queries,
	}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"max=1000"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"max=1000"`
}

type ReplyRequest struct {
	Reply string `json:"reply" binding:"required,max=1000"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	rv, err := h.create.Execute(c.Request.Context(), ucreview.CreateReviewInput{
		BookingID: req.BookingID,
		AuthorID:  callerID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_create_review", "Could not create review.")
		return
	}

	httpresp.Created(c, rv)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid review id.")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	rv, err := h.manage.Update(c.Request.Context(), ucreview.UpdateReviewInput{
		ReviewID: uint(id),
		CallerID: callerID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_update_review", "Could not update review.")
		return
	}

	c.JSON(http.StatusOK, rv)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid review id.")
		return
	}

	if err := h.manage.Delete(c.Request.Context(), uint(id), callerID); err != nil {
		httperr.WriteBusiness(c, err, "failed_to_delete_review", "Could not delete review.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review_deleted"})
}

func (h *ReviewHandler) Reply(c *gin.Context) {
	trainerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid review id.")
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	rv, err := h.reply.Execute(c.Request.Context(), uint(id), trainerID, req.Reply)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_reply", "Could not add reply.")
		return
	}

	c.JSON(http.StatusOK, rv)
}

func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid review id.")
		return
	}

	rv, err := h.queries.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_get_review", "Could not load review.")
		return
	}

	httpresp.OK(c, rv)
}

func (h *ReviewHandler) ListByService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceId"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid service id.")
		return
	}

	reviews, err := h.queries.ListByService(c.Request.Context(), uint(serviceID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}

func (h *ReviewHandler) ListByTrainer(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerId"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid trainer id.")
		return
	}

	reviews, err := h.queries.ListByTrainer(c.Request.Context(), uint(trainerID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}

func (h *ReviewHandler) ServiceStats(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceId"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid service id.")
		return
	}

	stats, err := h.queries.ServiceStats(c.Request.Context(), uint(serviceID))
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Could not load stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
