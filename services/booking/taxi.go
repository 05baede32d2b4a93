package booking

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"easyislanders/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// taxiRoster is the fixed driver pool. Dispatch picks one pseudo-randomly;
// there is no availability tracking, a driver can hold several rides.
var taxiRoster = []models.DriverInfo{
	{Name: "Hasan Kaya", Vehicle: "Mercedes Vito", Plate: "GM 345", Phone: "+90 533 841 2207"},
	{Name: "Mehmet Özkan", Vehicle: "Toyota Corolla", Plate: "LK 512", Phone: "+90 542 618 9034"},
	{Name: "Ali Demir", Vehicle: "VW Caddy", Plate: "GN 208", Phone: "+90 548 755 4461"},
}

// RosterDriverNames returns the names in the fixed dispatch roster.
func RosterDriverNames() []string {
	names := make([]string, len(taxiRoster))
	for i, d := range taxiRoster {
		names[i] = d.Name
	}
	return names
}

// DispatchTaxi assigns a roster driver and persists the booking immediately
// in taxi_dispatched: taxi is the only flow with no confirmation gate. The
// ride is metered, so TotalPrice stays 0.
func (s *DefaultBookingService) DispatchTaxi(ctx context.Context, userID string, req models.TaxiRequest) (*models.Booking, error) {
	if userID == "" {
		return nil, NewInvalidRequestError("user id is required")
	}
	if req.Destination == "" || req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, NewInvalidRequestError("destination, customer name and phone are required")
	}

	driver := taxiRoster[rand.Intn(len(taxiRoster))]
	driver.ETA = fmt.Sprintf("%d minutes", 5+rand.Intn(11))

	now := time.Now()
	pickup := req.Pickup
	b := &models.Booking{
		ID:                "TAXI-" + uuid.New().String(),
		UserID:            userID,
		ItemID:            "taxi",
		ItemTitle:         "Taxi to " + req.Destination,
		Domain:            "Transport",
		CustomerName:      req.CustomerName,
		CustomerContact:   req.CustomerPhone,
		Status:            models.StatusTaxiDispatched,
		TotalPrice:        0,
		PickupCoordinates: &pickup,
		DriverDetails:     &driver,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("DispatchTaxi: failed to persist booking: %w", err)
	}

	s.logger().Info("taxi dispatched",
		zap.String("booking", b.ID),
		zap.String("driver", driver.Name),
		zap.String("destination", req.Destination))

	if s.NotificationSvc != nil {
		msg := fmt.Sprintf("%s is on the way in a %s (%s), about %s out.",
			driver.Name, driver.Vehicle, driver.Plate, driver.ETA)
		if _, err := s.NotificationSvc.Append(ctx, userID, models.NotificationBooking, "Taxi Dispatched", msg); err != nil {
			s.logger().Warn("dispatch notification failed",
				zap.String("booking", b.ID), zap.Error(err))
		}
	}

	return b, nil
}
