package booking

import (
	"context"

	"github.com/fitmarket/trainer-booking/internal/audit"
	domain "github.com/fitmarket/trainer-booking/internal/domain/booking"
	"github.com/fitmarket/trainer-booking/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute deletes the booking once ownership is established. Any status may
// be deleted; the attached review, if any, goes with it via the FK cascade.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	callerID uint,
	isTrainer bool,
) error {

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBookingWithService(ctx, bookingID, true)
		if err != nil {
			return httperr.ErrBusinessMsg(httperr.CodeNotFound, "booking not found")
		}

		if err := domain.CanDelete(b, callerID, isTrainer); err != nil {
			return err
		}

		return tx.DeleteBooking(ctx, b)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
