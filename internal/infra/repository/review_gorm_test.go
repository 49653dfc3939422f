package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Zone{},
		&models.Duration{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
	))
	return db
}

func seedCompletedBooking(t *testing.T, db *gorm.DB) models.Booking {
	t.Helper()

	trainer := models.User{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com", PasswordHash: "x", Role: models.RoleTrainer}
	client := models.User{FirstName: "Bruno", LastName: "Costa", Email: "bruno@example.com", PasswordHash: "x", Role: models.RoleClient}
	require.NoError(t, db.Create(&trainer).Error)
	require.NoError(t, db.Create(&client).Error)

	category := models.Category{Name: "Strength"}
	duration := models.Duration{Minutes: 60}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&duration).Error)

	svc := models.Service{
		TrainerID:  trainer.ID,
		Title:      "Personal training",
		Price:      120,
		CategoryID: category.ID,
		DurationID: duration.ID,
	}
	require.NoError(t, db.Omit("Zones").Create(&svc).Error)

	b := models.Booking{
		ServiceID:     svc.ID,
		ClientID:      client.ID,
		ScheduledDate: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:        "completed",
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func TestCreateReviewDuplicateBookingIsConflict(t *testing.T) {
	db := newTestDB(t)
	b := seedCompletedBooking(t, db)
	repo := NewReviewGormRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateReview(ctx, &models.Review{BookingID: b.ID, Rating: 5}))

	// Second insert loses to the unique index on booking_id.
	err := repo.CreateReview(ctx, &models.Review{BookingID: b.ID, Rating: 3})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict), "got %v", err)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
