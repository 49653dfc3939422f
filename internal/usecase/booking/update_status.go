package booking

import (
	"context"

	"github.com/fitmarket/trainer-booking/internal/audit"
	domain "github.com/fitmarket/trainer-booking/internal/domain/booking"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/metrics"
	"github.com/fitmarket/trainer-booking/internal/models"
)

type UpdateStatusInput struct {
	BookingID    uint
	CallerID     uint
	NewStatus    domain.Status
	CancelReason string
}

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Booking, error) {

	if !domain.IsValid(in.NewStatus) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidArgument, "unknown booking status")
	}

	// Ownership read and status write serialize on the locked row.
	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBookingWithService(ctx, in.BookingID, true)
		if err != nil {
			return httperr.ErrBusinessMsg(httperr.CodeNotFound, "booking not found")
		}

		if err := domain.Transition(b, in.NewStatus, in.CallerID, in.CancelReason); err != nil {
			return err
		}

		return tx.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	joined, err := uc.repo.GetBookingJoined(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	metrics.BookingTransitions.WithLabelValues(string(in.NewStatus)).Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CallerID,
		Action:   "booking_status_" + string(in.NewStatus),
		Entity:   "booking",
		EntityID: &in.BookingID,
	})

	return joined, nil
}
