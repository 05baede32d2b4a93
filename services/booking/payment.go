package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "easyislanders/database/repository/booking"
	"easyislanders/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProvider creates a payment intent for a booking that requires
// up-front payment. It returns the gateway intent id and the client secret
// the payment form renders against.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount float64, currency, bookingID string) (intentID, clientSecret string, err error)
}

// StripePaymentProvider creates real Stripe payment intents. stripe.Key must
// be set before use (done in main from config).
type StripePaymentProvider struct {
	Logger *zap.Logger
}

func (p *StripePaymentProvider) CreateIntent(ctx context.Context, amount float64, currency, bookingID string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(currency),
		Metadata: map[string]string{"booking_id": bookingID},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("CreateIntent: stripe payment intent failed: %w", err)
	}

	if p.Logger != nil {
		p.Logger.Info("payment intent created",
			zap.String("booking", bookingID),
			zap.String("intent", intent.ID))
	}
	return intent.ID, intent.ClientSecret, nil
}

// SimulatedPaymentProvider issues fake client secrets so the payment form
// renders in environments without a Stripe key.
type SimulatedPaymentProvider struct{}

func (p *SimulatedPaymentProvider) CreateIntent(ctx context.Context, amount float64, currency, bookingID string) (string, string, error) {
	id := "pi_sim_" + uuid.New().String()
	return id, id + "_secret", nil
}

// CompletePayment is the one state transition driven by direct user action
// rather than the ticker: it synchronously moves payment_pending to
// confirmed and clears the pending-payment flag. Calling it again on a
// confirmed booking is a no-op, not an error.
func (s *DefaultBookingService) CompletePayment(ctx context.Context, bookingID string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NewBookingNotFoundError(bookingID)
		}
		return fmt.Errorf("CompletePayment: %w", err)
	}

	switch b.Status {
	case models.StatusConfirmed:
		return nil // already paid
	case models.StatusPaymentPending:
	default:
		return NewInvalidTransitionError(fmt.Sprintf(
			"booking %s is %s, payment completion needs payment_pending", bookingID, b.Status))
	}

	b.Status = models.StatusConfirmed
	b.PendingPayment = false
	b.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, b); err != nil {
		return fmt.Errorf("CompletePayment: failed to persist transition: %w", err)
	}

	s.logger().Info("payment completed",
		zap.String("booking", b.ID))

	if s.NotificationSvc != nil {
		msg := fmt.Sprintf("Your payment for %s has been received. The booking is confirmed.", b.ItemTitle)
		if _, err := s.NotificationSvc.Append(ctx, b.UserID, models.NotificationBooking, "Payment Confirmed", msg); err != nil {
			s.logger().Warn("payment confirmation notification failed",
				zap.String("booking", b.ID), zap.Error(err))
		}
	}

	return nil
}
