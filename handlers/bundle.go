// File: easyislanders/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	CreateBooking   gin.HandlerFunc
	CompletePayment gin.HandlerFunc
	DispatchTaxi    gin.HandlerFunc
	GetBooking      gin.HandlerFunc
	ListBookings    gin.HandlerFunc

	// Notification endpoints
	ListNotifications    gin.HandlerFunc
	MarkNotificationRead gin.HandlerFunc

	// Catalog endpoints
	SearchCatalog  gin.HandlerFunc
	GetCatalogItem gin.HandlerFunc
}
