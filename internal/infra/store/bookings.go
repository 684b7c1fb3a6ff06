package store

import (
	"context"
	"encoding/json"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/internal/infra"
)

// Bookings adapts the generic document store to the booking collection.
// It serves both the lifecycle write side (Merge) and the ops read side
// (Find).
type Bookings struct {
	docs *Documents
}

func NewBookings(docs *Documents) *Bookings {
	return &Bookings{docs: docs}
}

func (s *Bookings) Merge(ctx context.Context, id string, patch booking.Patch) error {
	return s.docs.Merge(ctx, CollectionBookings, id, patch)
}

func (s *Bookings) Find(ctx context.Context, id string) (*booking.Booking, error) {
	raw, err := s.docs.Get(ctx, CollectionBookings, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var b booking.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking document", err)
	}
	return &b, nil
}
