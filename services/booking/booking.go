package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "easyislanders/database/repository/booking"
	"easyislanders/models"
	"easyislanders/services/catalog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking resolves the catalog item, snapshots it and persists a new
// booking in its flow's initial state. Nothing is persisted when the item
// does not resolve.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.BookingResult, error) {
	if userID == "" {
		return nil, NewInvalidRequestError("user id is required")
	}
	if req.FlowType == models.FlowTaxi {
		return nil, NewInvalidRequestError("taxi bookings go through DispatchTaxi")
	}
	if req.CustomerName == "" || req.CustomerContact == "" {
		return nil, NewInvalidRequestError("customer name and contact are required")
	}

	item, err := s.CatalogSvc.GetItem(ctx, req.ItemID)
	if err != nil {
		if catalog.IsNotFound(err) {
			return nil, NewItemNotFoundError(req.ItemID)
		}
		return nil, fmt.Errorf("CreateBooking: failed to resolve item %s: %w", req.ItemID, err)
	}

	requiresPayment := req.FlowType == models.FlowShortTermRental
	status := models.StatusViewingRequested
	if requiresPayment {
		status = models.StatusPaymentPending
	}

	now := time.Now()
	b := &models.Booking{
		ID:              "ORD-" + uuid.New().String(),
		UserID:          userID,
		ItemID:          item.ID,
		ItemTitle:       item.Title,
		ItemImage:       item.Image,
		Domain:          item.Domain,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		Status:          status,
		TotalPrice:      item.Price,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		ViewingTime:     req.ViewingTime,
		SpecialRequests: req.SpecialRequests,
		NeedsPickup:     req.NeedsPickup,
		PendingPayment:  requiresPayment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	result := &models.BookingResult{Booking: b, RequiresPayment: requiresPayment}

	if requiresPayment && s.Payments != nil {
		intentID, clientSecret, err := s.Payments.CreateIntent(ctx, b.TotalPrice, "gbp", b.ID)
		if err != nil {
			// The payment form can still render against a retried intent, so a
			// gateway hiccup must not lose the booking.
			s.logger().Warn("payment intent creation failed",
				zap.String("booking", b.ID), zap.Error(err))
		} else {
			b.PaymentIntentID = intentID
			result.ClientSecret = clientSecret
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("CreateBooking: failed to persist booking: %w", err)
	}

	s.logger().Info("booking created",
		zap.String("booking", b.ID),
		zap.String("item", b.ItemID),
		zap.String("flow", string(req.FlowType)),
		zap.String("status", string(b.Status)))

	return result, nil
}

// GetBooking returns one booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewBookingNotFoundError(id)
		}
		return nil, fmt.Errorf("GetBooking: %w", err)
	}
	return b, nil
}

// ListBookings returns every booking. Bookings are never deleted, only
// advanced or left stale.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
