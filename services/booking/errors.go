package booking

import (
	"errors"
	"fmt"
)

// BookingError carries a machine-readable code alongside the message.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewItemNotFoundError(itemID string) error {
	return &BookingError{
		Code:    "itemNotFound",
		Message: fmt.Sprintf("catalog item %q does not exist", itemID),
	}
}

func NewBookingNotFoundError(bookingID string) error {
	return &BookingError{
		Code:    "bookingNotFound",
		Message: fmt.Sprintf("booking %q does not exist", bookingID),
	}
}

func NewInvalidRequestError(msg string) error {
	return &BookingError{
		Code:    "invalidRequest",
		Message: msg,
	}
}

func NewInvalidTransitionError(msg string) error {
	return &BookingError{
		Code:    "invalidTransition",
		Message: msg,
	}
}

// IsNotFound reports whether err is a not-found booking error (item or booking).
func IsNotFound(err error) bool {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code == "itemNotFound" || be.Code == "bookingNotFound"
	}
	return false
}

// IsInvalidRequest reports whether err is a caller error.
func IsInvalidRequest(err error) bool {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code == "invalidRequest" || be.Code == "invalidTransition"
	}
	return false
}
