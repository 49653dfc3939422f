package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/fitmarket/trainer-booking/internal/domain/booking"
	"github.com/fitmarket/trainer-booking/internal/dto"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/httpresp"
	"github.com/fitmarket/trainer-booking/internal/middleware"
	"github.com/fitmarket/trainer-booking/internal/models"
	ucbooking "github.com/fitmarket/trainer-booking/internal/usecase/booking"
)

// Use-case contracts consumed by the handler; satisfied by the structs in
// internal/usecase/booking and by mocks in tests.
type bookingCreator interface {
	Execute(ctx context.Context, in ucbooking.CreateBookingInput) (*models.Booking, error)
}

type bookingStatusUpdater interface {
	Execute(ctx context.Context, in ucbooking.UpdateStatusInput) (*models.Booking, error)
}

type bookingDeleter interface {
	Execute(ctx context.Context, bookingID, callerID uint, isTrainer bool) error
}

type bookingReader interface {
	ListForUser(ctx context.Context, userID uint, isTrainer bool) ([]models.Booking, error)
	GetByID(ctx context.Context, bookingID, callerID uint) (*models.Booking, error)
	CheckAvailability(ctx context.Context, serviceID uint, at time.Time) (bool, error)
}

type BookingHandler struct {
	create       bookingCreator
	updateStatus bookingStatusUpdater
	delete       bookingDeleter
	queries      bookingReader
}

func NewBookingHandler(
	create bookingCreator,
	updateStatus bookingStatusUpdater,
	delete bookingDeleter,
	queries bookingReader,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		updateStatus: updateStatus,
		delete:       delete,
		queries:      queries,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	ServiceID     uint      `json:"service_id" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Notes         string    `json:"notes" binding:"max=500"`
}

type UpdateBookingStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	CancelReason string `json:"cancel_reason"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		ServiceID:     req.ServiceID,
		ClientID:      clientID,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_create_booking", "Could not create booking.")
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid booking id.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, err.Error())
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), ucbooking.UpdateStatusInput{
		BookingID:    uint(id),
		CallerID:     callerID,
		NewStatus:    domain.Status(req.Status),
		CancelReason: req.CancelReason,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_update_booking", "Could not update booking.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid booking id.")
		return
	}

	isTrainer := role == models.RoleTrainer
	if err := h.delete.Execute(c.Request.Context(), uint(id), callerID, isTrainer); err != nil {
		httperr.WriteBusiness(c, err, "failed_to_delete_booking", "Could not delete booking.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking_deleted"})
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	bookings, err := h.queries.ListForUser(c.Request.Context(), callerID, role == models.RoleTrainer)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	items := make([]dto.BookingListItem, 0, len(bookings))
	for i := range bookings {
		items = append(items, dto.BookingListItemFromModel(&bookings[i]))
	}

	c.JSON(http.StatusOK, items)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid booking id.")
		return
	}

	b, err := h.queries.GetByID(c.Request.Context(), uint(id), callerID)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_get_booking", "Could not load booking.")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid service id.")
		return
	}

	at, err := time.Parse(time.RFC3339, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "Invalid date.")
		return
	}

	available, err := h.queries.CheckAvailability(c.Request.Context(), uint(serviceID), at)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_check_availability", "Could not check availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}
