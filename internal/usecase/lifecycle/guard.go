package lifecycle

import (
	"context"
	"log/slog"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/internal/infra/feed"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/clock"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
)

// TransitionGuard is a self-healing check on every booking update. It
// cannot stop an illegal write from landing, but it always restores
// consistency afterwards: bookings past their acceptance deadline are
// force-cancelled (even if the write tried to accept them), and any status
// jump outside the allowed graph is reverted to the prior status while the
// rest of the write is kept. Both corrections are merges and reapply as
// no-ops, so feed redelivery is safe.
type TransitionGuard struct {
	store  BookingStore
	clock  clock.Clock
	logger *slog.Logger
}

func NewTransitionGuard(store BookingStore, clk clock.Clock, logger *slog.Logger) *TransitionGuard {
	return &TransitionGuard{store: store, clock: clk, logger: logger}
}

func (h *TransitionGuard) Name() string {
	return "transition_guard"
}

func (h *TransitionGuard) Handle(ctx context.Context, change feed.Change) error {
	if !change.IsUpdate() {
		return nil
	}
	before, after := change.Before, change.After

	// Expiry preempts transition validity: a stale accept racing past the
	// deadline must still end in cancellation, not a reverted-but-stuck
	// pending record.
	now := h.clock.Now()
	if after.Expired(now) {
		h.logger.Info("booking expired, force-cancelling",
			"booking_id", change.BookingID,
			"status", after.Status,
			"accept_deadline", after.AcceptDeadline,
		)
		if err := h.store.Merge(ctx, change.BookingID, booking.ForceCancelPatch(now)); err != nil {
			return errs.Wrap(err, "force-cancel merge failed")
		}
		return nil
	}

	// Re-writing the same status is always legal; the table only governs
	// actual changes.
	if before.Status == after.Status {
		return nil
	}

	if !before.Status.CanTransition(after.Status) {
		h.logger.Warn("illegal status transition, reverting",
			"booking_id", change.BookingID,
			"from", before.Status,
			"to", after.Status,
		)
		if err := h.store.Merge(ctx, change.BookingID, booking.RevertStatusPatch(before.Status)); err != nil {
			return errs.Wrap(err, "status revert merge failed")
		}
	}
	return nil
}
