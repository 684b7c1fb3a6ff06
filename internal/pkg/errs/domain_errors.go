package errs

import "errors"

// Domain-specific sentinel errors for the booking lifecycle layers
var (
	ErrBookingNotFound = errors.New("booking not found")
)
