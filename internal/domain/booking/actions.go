package booking

import (
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves b into next on behalf of callerID, enforcing both the
// lifecycle edge and which party may drive it. b.Service must be loaded so
// the owning trainer is known.
func Transition(b *models.Booking, next Status, callerID uint, cancelReason string) error {
	trainerID := b.Service.TrainerID

	if callerID != trainerID && callerID != b.ClientID {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	switch RequiredParty(next) {
	case PartyTrainer:
		if callerID != trainerID {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}
	case PartyClient:
		if callerID != b.ClientID {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}
	}

	if err := CanTransition(Status(b.Status), next); err != nil {
		return err
	}

	b.Status = string(next)
	if next == StatusCancelled && cancelReason != "" {
		b.CancelReason = cancelReason
	}
	return nil
}

// CanDelete checks ownership only; any status may be deleted once the caller
// is established as the owning trainer or client.
func CanDelete(b *models.Booking, callerID uint, isTrainer bool) error {
	if isTrainer {
		if b.Service.TrainerID != callerID {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}
		return nil
	}
	if b.ClientID != callerID {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}

// CanRead allows either party of the booking.
func CanRead(b *models.Booking, callerID uint) error {
	if callerID != b.Service.TrainerID && callerID != b.ClientID {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}
