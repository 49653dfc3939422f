package booking

import (
	"context"
	"time"

	"github.com/fitmarket/trainer-booking/internal/audit"
	domain "github.com/fitmarket/trainer-booking/internal/domain/booking"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/metrics"
	"github.com/fitmarket/trainer-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID     uint
	ClientID      uint
	ScheduledDate time.Time
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// now is swappable in tests
	now func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: auditDispatcher,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// Schema-level check happens before any write begins.
	if !in.ScheduledDate.After(uc.now()) {
		return nil, httperr.ErrBusinessMsg(
			httperr.CodeInvalidArgument,
			"scheduled date must be in the future",
		)
	}

	b := &models.Booking{
		ServiceID:     in.ServiceID,
		ClientID:      in.ClientID,
		ScheduledDate: in.ScheduledDate,
		Notes:         in.Notes,
		Status:        string(domain.InitialStatus()),
	}

	// Service-existence read and the insert commit together.
	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetServiceByID(ctx, in.ServiceID); err != nil {
			return httperr.ErrBusinessMsg(httperr.CodeNotFound, "service not found")
		}
		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	joined, err := uc.repo.GetBookingJoined(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return joined, nil
}
