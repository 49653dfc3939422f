package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/fitmarket/trainer-booking/internal/domain/booking"
	"github.com/fitmarket/trainer-booking/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory stand-in for the gorm repository. InTx simply runs
// fn against the fake itself, so precondition reads and writes are observable.
type fakeRepo struct {
	service *models.Service
	booking *models.Booking

	countActive int64

	created       *models.Booking
	updateCalled  bool
	deleteCalled  bool
	txStarted     bool
	byClientCalls []uint
	byTrainerCall []uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) InTx(ctx context.Context, fn func(domain.Repository) error) error {
	f.txStarted = true
	return fn(f)
}

func (f *fakeRepo) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, errNotFound
	}
	return f.service, nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	b.ID = 1
	f.created = b
	return nil
}

func (f *fakeRepo) GetBookingWithService(ctx context.Context, id uint, forUpdate bool) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, errNotFound
	}
	return f.booking, nil
}

func (f *fakeRepo) GetBookingJoined(ctx context.Context, id uint) (*models.Booking, error) {
	if f.created != nil && f.created.ID == id {
		return f.created, nil
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, errNotFound
	}
	return f.booking, nil
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	f.updateCalled = true
	f.booking = b
	return nil
}

func (f *fakeRepo) DeleteBooking(ctx context.Context, b *models.Booking) error {
	f.deleteCalled = true
	return nil
}

func (f *fakeRepo) ListByClient(ctx context.Context, clientID uint) ([]models.Booking, error) {
	f.byClientCalls = append(f.byClientCalls, clientID)
	return []models.Booking{}, nil
}

func (f *fakeRepo) ListByTrainer(ctx context.Context, trainerID uint) ([]models.Booking, error) {
	f.byTrainerCall = append(f.byTrainerCall, trainerID)
	return []models.Booking{}, nil
}

func (f *fakeRepo) CountActiveAt(ctx context.Context, serviceID uint, at time.Time) (int64, error) {
	return f.countActive, nil
}
