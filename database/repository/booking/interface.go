package bookingRepo

import (
	"context"
	"errors"

	"easyislanders/models"
)

// ErrNotFound is returned when a booking id does not resolve.
var ErrNotFound = errors.New("booking not found")

// BookingRepository is the persistence gateway for bookings. Bookings are
// never deleted, only created and advanced.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
}
