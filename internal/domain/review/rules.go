package review

import (
	booking "github.com/fitmarket/trainer-booking/internal/domain/booking"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

func ValidRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidArgument, "rating must be between 1 and 5")
	}
	return nil
}

// CanCreate enforces the one-review-per-completed-booking invariant.
// existing is the review already attached to the booking, nil when absent.
func CanCreate(b *models.Booking, existing *models.Review) error {
	if booking.Status(b.Status) != booking.StatusCompleted {
		return httperr.ErrBusinessMsg(httperr.CodeInvalidState, "reviews are only allowed on completed bookings")
	}
	if existing != nil {
		return httperr.ErrBusinessMsg(httperr.CodeConflict, "booking already has a review")
	}
	return nil
}
