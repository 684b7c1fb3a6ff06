package lifecycle

import (
	"context"
	"log/slog"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/internal/infra/feed"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/clock"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
)

// SnapshotInitializer enriches a freshly created booking: it denormalizes
// the tutor's display name and hourly rate onto the record, stamps
// createdAt, and starts the acceptance window. createdAt is kept when the
// creator already supplied one; acceptDeadline is always computed here —
// the controller owns that field, and a client-written deadline must not
// survive. Redelivery of the creation event re-applies the same merge, at
// worst restarting the window.
type SnapshotInitializer struct {
	store  BookingStore
	tutors TutorSource
	clock  clock.Clock
	logger *slog.Logger
}

func NewSnapshotInitializer(store BookingStore, tutors TutorSource, clk clock.Clock, logger *slog.Logger) *SnapshotInitializer {
	return &SnapshotInitializer{store: store, tutors: tutors, clock: clk, logger: logger}
}

func (h *SnapshotInitializer) Name() string {
	return "snapshot_initializer"
}

func (h *SnapshotInitializer) Handle(ctx context.Context, change feed.Change) error {
	if !change.IsCreate() {
		return nil
	}
	b := change.After

	profile, err := h.tutors.Find(ctx, b.TutorID)
	if err != nil {
		return errs.Wrap(err, "tutor profile lookup failed")
	}

	var profileName string
	var profileRate *float64
	if profile != nil {
		profileName = profile.DisplayName
		profileRate = profile.HourlyRate
	}

	now := h.clock.Now()

	createdAt := now
	if b.CreatedAt != nil {
		createdAt = *b.CreatedAt
	}
	deadline := now.Add(booking.AcceptWindow)

	patch := booking.SnapshotPatch(
		booking.ResolveTutorName(profileName, b.TutorName),
		booking.ResolveHourlyRate(profileRate, b.HourlyRate),
		createdAt,
		deadline,
	)
	if err := h.store.Merge(ctx, change.BookingID, patch); err != nil {
		return errs.Wrap(err, "snapshot merge failed")
	}

	h.logger.Info("booking snapshot initialized",
		"booking_id", change.BookingID,
		"tutor_id", b.TutorID,
		"accept_deadline", deadline,
	)
	return nil
}
