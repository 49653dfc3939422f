package booking

import (
	"context"
	"time"

	"github.com/fitmarket/trainer-booking/internal/models"
)

type Repository interface {
	// InTx runs fn against a transactional view of the repository.
	// Everything fn does commits together or not at all.
	InTx(ctx context.Context, fn func(Repository) error) error

	// -------- Service --------
	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Booking (create / read) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// GetBookingWithService loads the booking plus its service, enough for
	// ownership checks. forUpdate locks the row for the transaction.
	GetBookingWithService(
		ctx context.Context,
		id uint,
		forUpdate bool,
	) (*models.Booking, error)

	// GetBookingJoined loads the booking denormalized with service, category,
	// duration, trainer and client.
	GetBookingJoined(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// -------- Booking (state change / delete) --------
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Queries --------
	ListByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	ListByTrainer(
		ctx context.Context,
		trainerID uint,
	) ([]models.Booking, error)

	CountActiveAt(
		ctx context.Context,
		serviceID uint,
		at time.Time,
	) (int64, error)
}
