package feed

import (
	"context"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
)

// Change is one document change on a booking record: the image before the
// write and the image after it. Creation events have no Before; deletion
// events have no After. Handlers must check both sides before use.
type Change struct {
	BookingID string           `json:"bookingId"`
	Before    *booking.Booking `json:"before,omitempty"`
	After     *booking.Booking `json:"after,omitempty"`
}

func (c Change) IsCreate() bool {
	return c.Before == nil && c.After != nil
}

func (c Change) IsUpdate() bool {
	return c.Before != nil && c.After != nil
}

// Handler reacts to one change event. Handlers are independent of each
// other and run concurrently for the same event; the feed redelivers on
// error, so Handle must be idempotent.
type Handler interface {
	Name() string
	Handle(ctx context.Context, change Change) error
}
