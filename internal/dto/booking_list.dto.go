package dto

import (
	"time"

	"github.com/fitmarket/trainer-booking/internal/models"
)

// BookingListItem is the flattened row returned by the my-bookings listing.
type BookingListItem struct {
	ID            uint      `json:"id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CancelReason  string    `json:"cancel_reason,omitempty"`

	ServiceID          uint    `json:"service_id"`
	ServiceTitle       string  `json:"service_title"`
	ServiceDescription string  `json:"service_description"`
	ServicePrice       float64 `json:"service_price"`
	CategoryName       string  `json:"category_name"`
	DurationMinutes    int     `json:"duration_minutes"`

	ClientName  string `json:"client_name"`
	TrainerName string `json:"trainer_name"`

	CreatedAt time.Time `json:"created_at"`
}

func BookingListItemFromModel(b *models.Booking) BookingListItem {
	return BookingListItem{
		ID:            b.ID,
		ScheduledDate: b.ScheduledDate,
		Status:        b.Status,
		Notes:         b.Notes,
		CancelReason:  b.CancelReason,

		ServiceID:          b.ServiceID,
		ServiceTitle:       b.Service.Title,
		ServiceDescription: b.Service.Description,
		ServicePrice:       b.Service.Price,
		CategoryName:       b.Service.Category.Name,
		DurationMinutes:    b.Service.Duration.Minutes,

		ClientName:  b.Client.FullName(),
		TrainerName: b.Service.Trainer.FullName(),

		CreatedAt: b.CreatedAt,
	}
}
