package booking

import (
	"context"
	"sync"

	bookingRepo "easyislanders/database/repository/booking"
	"easyislanders/models"
	"easyislanders/services/catalog"
	"easyislanders/services/notification"

	"go.uber.org/zap"
)

// BookingService creates bookings and drives the one user-triggered
// transition (payment completion). Automated transitions belong to the
// LifecycleEngine in this package.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.BookingResult, error)
	CompletePayment(ctx context.Context, bookingID string) error
	DispatchTaxi(ctx context.Context, userID string, req models.TaxiRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo            bookingRepo.BookingRepository
	CatalogSvc      catalog.CatalogService
	NotificationSvc notification.NotificationService
	Payments        PaymentProvider
	Logger          *zap.Logger

	// writeMu is the single-writer discipline for booking mutations: both
	// CompletePayment and the lifecycle engine's scan pass hold it, so a
	// user-triggered transition can never interleave with a tick.
	writeMu sync.Mutex
}
