package models

import "time"

// FlowType selects which booking variant governs the initial state and
// the required steps.
type FlowType string

const (
	FlowShortTermRental FlowType = "short_term_rental"
	FlowLongTerm        FlowType = "long_term"
	FlowTaxi            FlowType = "taxi"
)

// BookingStatus is the lifecycle state of a booking. Confirmed and
// ViewingConfirmed are terminal: the lifecycle engine never advances past them.
type BookingStatus string

const (
	StatusPaymentPending       BookingStatus = "payment_pending"
	StatusConfirmed            BookingStatus = "confirmed"
	StatusViewingRequested     BookingStatus = "viewing_requested"
	StatusViewingAwaitingOwner BookingStatus = "viewing_awaiting_owner"
	StatusViewingConfirmed     BookingStatus = "viewing_confirmed"
	StatusTaxiDispatched       BookingStatus = "taxi_dispatched"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// DriverInfo describes the driver assigned to a taxi booking.
type DriverInfo struct {
	Name    string `bson:"name" json:"name"`
	Vehicle string `bson:"vehicle" json:"vehicle"`
	Plate   string `bson:"plate" json:"plate"`
	Phone   string `bson:"phone" json:"phone"`
	ETA     string `bson:"eta" json:"eta"` // e.g. "8 minutes"
}

// Booking represents one user-initiated transaction against a catalog item.
// Item fields are a snapshot taken at creation time and are never re-synced,
// so the booking keeps the price and title the user actually saw.
type Booking struct {
	ID              string        `bson:"id" json:"id"` // "ORD-" or "TAXI-" prefixed
	UserID          string        `bson:"user_id" json:"userId"`
	ItemID          string        `bson:"item_id" json:"itemId"`
	ItemTitle       string        `bson:"item_title" json:"itemTitle"`
	ItemImage       string        `bson:"item_image,omitempty" json:"itemImage,omitempty"`
	Domain          string        `bson:"domain" json:"domain"` // e.g. "Real Estate", "Transport"
	CustomerName    string        `bson:"customer_name" json:"customerName"`
	CustomerContact string        `bson:"customer_contact" json:"customerContact"`
	Status          BookingStatus `bson:"status" json:"status"`
	TotalPrice      float64       `bson:"total_price" json:"totalPrice"` // GBP; 0 for metered taxi rides

	// Flow-specific fields.
	CheckIn           string       `bson:"check_in,omitempty" json:"checkIn,omitempty"`   // "YYYY-MM-DD"
	CheckOut          string       `bson:"check_out,omitempty" json:"checkOut,omitempty"` // "YYYY-MM-DD"
	ViewingTime       *time.Time   `bson:"viewing_time,omitempty" json:"viewingTime,omitempty"`
	PickupCoordinates *Coordinates `bson:"pickup_coordinates,omitempty" json:"pickupCoordinates,omitempty"`
	DriverDetails     *DriverInfo  `bson:"driver_details,omitempty" json:"driverDetails,omitempty"`
	SpecialRequests   string       `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	NeedsPickup       bool         `bson:"needs_pickup,omitempty" json:"needsPickup,omitempty"`
	WhatsappStatus    string       `bson:"whatsapp_status,omitempty" json:"whatsappStatus,omitempty"`

	// Payment tracking for short-term rentals.
	// No omitempty on pending_payment: the flag must overwrite to false in
	// the stored document when payment completes.
	PendingPayment  bool   `bson:"pending_payment" json:"pendingPayment"`
	PaymentIntentID string `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingRequest is the input to booking creation for the rental and
// viewing flows. Taxi dispatch has its own request type.
type BookingRequest struct {
	FlowType        FlowType   `json:"flowType" binding:"required"`
	ItemID          string     `json:"itemId" binding:"required"`
	CustomerName    string     `json:"customerName" binding:"required"`
	CustomerContact string     `json:"customerContact" binding:"required"`
	CheckIn         string     `json:"checkIn,omitempty"`
	CheckOut        string     `json:"checkOut,omitempty"`
	ViewingTime     *time.Time `json:"viewingTime,omitempty"`
	SpecialRequests string     `json:"specialRequests,omitempty"`
	NeedsPickup     bool       `json:"needsPickup,omitempty"`
}

// TaxiRequest is the input to taxi dispatch.
type TaxiRequest struct {
	Destination   string      `json:"destination" binding:"required"`
	CustomerName  string      `json:"customerName" binding:"required"`
	CustomerPhone string      `json:"customerPhone" binding:"required"`
	Pickup        Coordinates `json:"pickup"`
}

// BookingResult is returned by booking creation. RequiresPayment tells the
// client whether to show the payment form immediately; ClientSecret is set
// only in that case.
type BookingResult struct {
	Booking         *Booking `json:"booking"`
	RequiresPayment bool     `json:"requiresPayment"`
	ClientSecret    string   `json:"clientSecret,omitempty"`
}
