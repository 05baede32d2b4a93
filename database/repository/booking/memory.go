package bookingRepo

import (
	"context"
	"sync"

	"easyislanders/models"
)

// MemoryBookingRepo is an in-memory BookingRepository for development mode
// and tests. Values are copied on the way in and out so callers never share
// a struct with the store.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
	order    []string
}

// NewMemoryBookingRepo creates an empty in-memory booking repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (repo *MemoryBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, exists := repo.bookings[booking.ID]; !exists {
		repo.order = append(repo.order, booking.ID)
	}
	repo.bookings[booking.ID] = *booking
	return nil
}

func (repo *MemoryBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	booking, ok := repo.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (repo *MemoryBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]models.Booking, 0, len(repo.order))
	for _, id := range repo.order {
		out = append(out, repo.bookings[id])
	}
	return out, nil
}

func (repo *MemoryBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.bookings[booking.ID]; !ok {
		return ErrNotFound
	}
	repo.bookings[booking.ID] = *booking
	return nil
}
