package booking

import "easyislanders/models"

// The lifecycle state graph. Each flow advances along one path and stops at
// its terminal state; once advanced a status never reverts.
//
//	short-term rental: payment_pending -> confirmed
//	long-term/viewing: viewing_requested -> viewing_confirmed
//	taxi:              taxi_dispatched (arrival is notification-only)
//
// viewing_awaiting_owner is a display variant of viewing_requested and
// shares its edge.

// IsTerminal reports whether the engine no longer advances this status.
func IsTerminal(s models.BookingStatus) bool {
	switch s {
	case models.StatusConfirmed, models.StatusViewingConfirmed:
		return true
	}
	return false
}

// NextStatus returns the automated transition target for s, if one exists.
// taxi_dispatched has no target: its tick event is a repeatable
// driver-arriving notification, not a status change.
func NextStatus(s models.BookingStatus) (models.BookingStatus, bool) {
	switch s {
	case models.StatusPaymentPending:
		return models.StatusConfirmed, true
	case models.StatusViewingRequested, models.StatusViewingAwaitingOwner:
		return models.StatusViewingConfirmed, true
	}
	return "", false
}

// Thresholds are the per-edge Bernoulli cut-offs: a tick advances a booking
// only when the uniform draw exceeds the edge's threshold. The randomness
// stands in for real backend events (payment webhook, owner approval); the
// transition table above is the stable contract.
type Thresholds struct {
	PaymentConfirm float64
	ViewingConfirm float64
	DriverArriving float64
}

// DefaultThresholds mirrors the simulated webhook arrival rates.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PaymentConfirm: 0.3,
		ViewingConfirm: 0.5,
		DriverArriving: 0.7,
	}
}

func (t Thresholds) forStatus(s models.BookingStatus) float64 {
	switch s {
	case models.StatusPaymentPending:
		return t.PaymentConfirm
	case models.StatusViewingRequested, models.StatusViewingAwaitingOwner:
		return t.ViewingConfirm
	case models.StatusTaxiDispatched:
		return t.DriverArriving
	}
	return 1 // unreachable edge, never fires
}
