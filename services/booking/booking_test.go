package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "easyislanders/database/repository/booking"
	catalogRepo "easyislanders/database/repository/catalog"
	notificationRepo "easyislanders/database/repository/notification"
	"easyislanders/models"
	"easyislanders/services/catalog"
	"easyislanders/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	svc       *DefaultBookingService
	notifSvc  *notification.DefaultNotificationService
	notifRepo *notificationRepo.MemoryNotificationRepo
	repo      *bookingRepo.MemoryBookingRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	notifStore := notificationRepo.NewMemoryNotificationRepo()
	notifSvc, err := notification.NewDefaultNotificationService(notifStore, zap.NewNop(), 0)
	require.NoError(t, err)

	repo := bookingRepo.NewMemoryBookingRepo()
	svc := &DefaultBookingService{
		Repo: repo,
		CatalogSvc: &catalog.DefaultCatalogService{
			Repo: catalogRepo.NewSeededMemoryCatalogRepo(),
		},
		NotificationSvc: notifSvc,
		Payments:        &SimulatedPaymentProvider{},
		Logger:          zap.NewNop(),
	}
	return &testEnv{svc: svc, notifSvc: notifSvc, notifRepo: notifStore, repo: repo}
}

func TestCreateBookingShortTermRental(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.svc.CreateBooking(context.Background(), "user-1", models.BookingRequest{
		FlowType:        models.FlowShortTermRental,
		ItemID:          "re_1",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
		CheckIn:         "2026-10-01",
		CheckOut:        "2026-10-08",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPaymentPending, result.Booking.Status)
	assert.True(t, result.RequiresPayment)
	assert.True(t, result.Booking.PendingPayment)
	assert.NotEmpty(t, result.ClientSecret)
	assert.Contains(t, result.Booking.ID, "ORD-")

	stored, err := env.repo.GetByID(context.Background(), result.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaymentPending, stored.Status)
}

func TestCreateBookingLongTermViewing(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.svc.CreateBooking(context.Background(), "user-1", models.BookingRequest{
		FlowType:        models.FlowLongTerm,
		ItemID:          "re_0",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusViewingRequested, result.Booking.Status)
	assert.False(t, result.RequiresPayment)
	assert.Empty(t, result.ClientSecret)
	assert.Equal(t, float64(100000), result.Booking.TotalPrice)
	assert.Equal(t, "Real Estate", result.Booking.Domain)
}

func TestCreateBookingSnapshotsItemFields(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.svc.CreateBooking(context.Background(), "user-1", models.BookingRequest{
		FlowType:        models.FlowLongTerm,
		ItemID:          "re_0",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
	})
	require.NoError(t, err)

	item, err := env.svc.CatalogSvc.GetItem(context.Background(), "re_0")
	require.NoError(t, err)
	assert.Equal(t, item.Title, result.Booking.ItemTitle)
	assert.Equal(t, item.Price, result.Booking.TotalPrice)
	assert.Equal(t, item.Image, result.Booking.ItemImage)
}

func TestCreateBookingUnknownItem(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateBooking(context.Background(), "user-1", models.BookingRequest{
		FlowType:        models.FlowLongTerm,
		ItemID:          "does-not-exist",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
	})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// Nothing was persisted.
	all, err := env.repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateBookingRejectsTaxiFlow(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateBooking(context.Background(), "user-1", models.BookingRequest{
		FlowType:        models.FlowTaxi,
		ItemID:          "re_0",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
	})
	require.Error(t, err)
	assert.True(t, IsInvalidRequest(err))
}

func TestGetBookingNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.GetBooking(context.Background(), "ORD-missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func mustCreateViewing(t *testing.T, env *testEnv, userID string, viewingTime *time.Time) *models.Booking {
	t.Helper()
	result, err := env.svc.CreateBooking(context.Background(), userID, models.BookingRequest{
		FlowType:        models.FlowLongTerm,
		ItemID:          "re_0",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
		ViewingTime:     viewingTime,
	})
	require.NoError(t, err)
	return result.Booking
}
