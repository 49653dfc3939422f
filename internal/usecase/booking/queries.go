package booking

import (
	"context"
	"time"

	domain "github.com/fitmarket/trainer-booking/internal/domain/booking"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

type BookingQueries struct {
	repo domain.Repository
}

func NewBookingQueries(repo domain.Repository) *BookingQueries {
	return &BookingQueries{repo: repo}
}

// ListForUser picks the side of the join by role: trainers see bookings made
// against their services, clients see their own.
func (uc *BookingQueries) ListForUser(
	ctx context.Context,
	userID uint,
	isTrainer bool,
) ([]models.Booking, error) {

	if isTrainer {
		return uc.repo.ListByTrainer(ctx, userID)
	}
	return uc.repo.ListByClient(ctx, userID)
}

func (uc *BookingQueries) GetByID(
	ctx context.Context,
	bookingID uint,
	callerID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingJoined(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "booking not found")
	}

	if err := domain.CanRead(b, callerID); err != nil {
		return nil, err
	}
	return b, nil
}

// CheckAvailability reports whether the service has no pending or accepted
// booking at the given instant.
func (uc *BookingQueries) CheckAvailability(
	ctx context.Context,
	serviceID uint,
	at time.Time,
) (bool, error) {

	if _, err := uc.repo.GetServiceByID(ctx, serviceID); err != nil {
		return false, httperr.ErrBusinessMsg(httperr.CodeNotFound, "service not found")
	}

	count, err := uc.repo.CountActiveAt(ctx, serviceID, at)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
