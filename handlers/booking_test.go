package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingRepo "easyislanders/database/repository/booking"
	"easyislanders/handlers"
	catalogRepo "easyislanders/database/repository/catalog"
	notificationRepo "easyislanders/database/repository/notification"
	"easyislanders/models"
	"easyislanders/routes"
	"easyislanders/services/booking"
	"easyislanders/services/catalog"
	"easyislanders/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	notifSvc, err := notification.NewDefaultNotificationService(
		notificationRepo.NewMemoryNotificationRepo(), zap.NewNop(), 0)
	require.NoError(t, err)

	bookingSvc := &booking.DefaultBookingService{
		Repo:            bookingRepo.NewMemoryBookingRepo(),
		CatalogSvc:      &catalog.DefaultCatalogService{Repo: catalogRepo.NewSeededMemoryCatalogRepo()},
		NotificationSvc: notifSvc,
		Payments:        &booking.SimulatedPaymentProvider{},
		Logger:          zap.NewNop(),
	}

	bookingHandler := handlers.NewBookingHandler(bookingSvc, zap.NewNop())
	notificationHandler := handlers.NewNotificationHandler(notifSvc, zap.NewNop())
	catalogHandler := handlers.NewCatalogHandler(bookingSvc.CatalogSvc, zap.NewNop())

	router := gin.New()
	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		CreateBooking:   bookingHandler.CreateBookingHandler,
		CompletePayment: bookingHandler.CompletePaymentHandler,
		DispatchTaxi:    bookingHandler.DispatchTaxiHandler,
		GetBooking:      bookingHandler.GetBookingHandler,
		ListBookings:    bookingHandler.ListBookingsHandler,

		ListNotifications:    notificationHandler.ListNotificationsHandler,
		MarkNotificationRead: notificationHandler.MarkReadHandler,

		SearchCatalog:  catalogHandler.SearchHandler,
		GetCatalogItem: catalogHandler.GetItemHandler,
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", models.BookingRequest{
		FlowType:        models.FlowShortTermRental,
		ItemID:          "re_1",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var result models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.RequiresPayment)
	assert.Equal(t, models.StatusPaymentPending, result.Booking.Status)
	assert.NotEmpty(t, result.ClientSecret)
}

func TestCreateBookingEndpointRequiresUserHeader(t *testing.T) {
	router := newTestRouter(t)

	body, err := json.Marshal(models.BookingRequest{
		FlowType:        models.FlowLongTerm,
		ItemID:          "re_0",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingEndpointUnknownItem(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", models.BookingRequest{
		FlowType:        models.FlowLongTerm,
		ItemID:          "nope",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompletePaymentEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", models.BookingRequest{
		FlowType:        models.FlowShortTermRental,
		ItemID:          "re_1",
		CustomerName:    "Jane Doe",
		CustomerContact: "+44 7700 900123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var result models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	w = doJSON(t, router, http.MethodPost, "/api/bookings/"+result.Booking.ID+"/payment", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings/"+result.Booking.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stored models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.Equal(t, models.StatusConfirmed, stored.Status)
}

func TestDispatchTaxiEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/taxi", models.TaxiRequest{
		Destination:   "Kyrenia Harbour",
		CustomerName:  "Jane Doe",
		CustomerPhone: "+44 7700 900123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusTaxiDispatched, resp.Booking.Status)
	require.NotNil(t, resp.Booking.DriverDetails)
	assert.Contains(t, booking.RosterDriverNames(), resp.Booking.DriverDetails.Name)
}

func TestCatalogSearchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/catalog/search?domain=Real+Estate&maxPrice=1000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.CatalogItem `json:"items"`
		Count int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "re_1", resp.Items[0].ID)
}

func TestNotificationEndpoints(t *testing.T) {
	router := newTestRouter(t)

	// Taxi dispatch emits one notification for the rider.
	w := doJSON(t, router, http.MethodPost, "/api/taxi", models.TaxiRequest{
		Destination:   "Bellapais",
		CustomerName:  "Jane Doe",
		CustomerPhone: "+44 7700 900123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Notifications []models.Notification `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "Taxi Dispatched", resp.Notifications[0].Title)
	assert.False(t, resp.Notifications[0].Read)

	w = doJSON(t, router, http.MethodPut, "/api/notifications/"+resp.Notifications[0].ID+"/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 1)
	assert.True(t, resp.Notifications[0].Read)
}
