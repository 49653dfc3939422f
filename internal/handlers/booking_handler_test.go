package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/middleware"
	"github.com/fitmarket/trainer-booking/internal/models"
	ucbooking "github.com/fitmarket/trainer-booking/internal/usecase/booking"
)

type stubCreator struct {
	out *models.Booking
	err error
	got ucbooking.CreateBookingInput
}

func (s *stubCreator) Execute(ctx context.Context, in ucbooking.CreateBookingInput) (*models.Booking, error) {
	s.got = in
	return s.out, s.err
}

type stubStatusUpdater struct {
	out *models.Booking
	err error
	got ucbooking.UpdateStatusInput
}

func (s *stubStatusUpdater) Execute(ctx context.Context, in ucbooking.UpdateStatusInput) (*models.Booking, error) {
	s.got = in
	return s.out, s.err
}

type stubDeleter struct {
	err       error
	bookingID uint
	callerID  uint
	isTrainer bool
}

func (s *stubDeleter) Execute(ctx context.Context, bookingID, callerID uint, isTrainer bool) error {
	s.bookingID = bookingID
	s.callerID = callerID
	s.isTrainer = isTrainer
	return s.err
}

type stubReader struct {
	bookings  []models.Booking
	booking   *models.Booking
	available bool
	err       error
}

func (s *stubReader) ListForUser(ctx context.Context, userID uint, isTrainer bool) ([]models.Booking, error) {
	return s.bookings, s.err
}

func (s *stubReader) GetByID(ctx context.Context, bookingID, callerID uint) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubReader) CheckAvailability(ctx context.Context, serviceID uint, at time.Time) (bool, error) {
	return s.available, s.err
}

func bookingRouter(h *BookingHandler, userID uint, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextUserRole, role)
	})

	r.POST("/bookings", h.Create)
	r.PUT("/bookings/:id/status", h.UpdateStatus)
	r.DELETE("/bookings/:id", h.Delete)
	r.GET("/bookings/my-bookings", h.MyBookings)
	r.GET("/bookings/check-availability", h.CheckAvailability)
	return r
}

func TestBookingHandlerCreate(t *testing.T) {
	creator := &stubCreator{out: &models.Booking{ID: 1, ServiceID: 7, ClientID: 20}}
	h := NewBookingHandler(creator, nil, nil, nil)
	r := bookingRouter(h, 20, models.RoleClient)

	body := `{"service_id":7,"scheduled_date":"2026-09-01T10:00:00Z","notes":"leg day"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, uint(7), creator.got.ServiceID)
	assert.Equal(t, uint(20), creator.got.ClientID, "client id comes from the token, not the body")
	assert.Equal(t, "leg day", creator.got.Notes)
}

func TestBookingHandlerCreateMissingService(t *testing.T) {
	h := NewBookingHandler(&stubCreator{}, nil, nil, nil)
	r := bookingRouter(h, 20, models.RoleClient)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"notes":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandlerUpdateStatusMapsBusinessErrors(t *testing.T) {
	cases := []struct {
		code       string
		wantStatus int
	}{
		{httperr.CodeForbidden, http.StatusForbidden},
		{httperr.CodeNotFound, http.StatusNotFound},
		{httperr.CodeInvalidState, http.StatusBadRequest},
	}

	for _, tc := range cases {
		updater := &stubStatusUpdater{err: httperr.ErrBusiness(tc.code)}
		h := NewBookingHandler(nil, updater, nil, nil)
		r := bookingRouter(h, 10, models.RoleTrainer)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/bookings/1/status", strings.NewReader(`{"status":"accepted"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, tc.wantStatus, w.Code, "code %s", tc.code)
		assert.Equal(t, uint(1), updater.got.BookingID)
		assert.Equal(t, uint(10), updater.got.CallerID)
	}
}

func TestBookingHandlerDeletePassesRole(t *testing.T) {
	deleter := &stubDeleter{}
	h := NewBookingHandler(nil, nil, deleter, nil)
	r := bookingRouter(h, 10, models.RoleTrainer)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/bookings/3", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), deleter.bookingID)
	assert.Equal(t, uint(10), deleter.callerID)
	assert.True(t, deleter.isTrainer)
}

func TestBookingHandlerCheckAvailability(t *testing.T) {
	h := NewBookingHandler(nil, nil, nil, &stubReader{available: true})
	r := bookingRouter(h, 20, models.RoleClient)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/bookings/check-availability?service_id=7&date=2026-09-01T10:00:00Z", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":true`)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/bookings/check-availability?service_id=7&date=tomorrow", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
