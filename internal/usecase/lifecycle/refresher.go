package lifecycle

import (
	"context"
	"log/slog"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/internal/infra/feed"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/clock"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
)

// DeadlineRefresher restarts the acceptance window when payment confirms,
// so the tutor's response time is measured from the paid transition rather
// than from the original request. The before/after inequality check keeps
// paid→paid re-writes from extending the window.
type DeadlineRefresher struct {
	store  BookingStore
	clock  clock.Clock
	logger *slog.Logger
}

func NewDeadlineRefresher(store BookingStore, clk clock.Clock, logger *slog.Logger) *DeadlineRefresher {
	return &DeadlineRefresher{store: store, clock: clk, logger: logger}
}

func (h *DeadlineRefresher) Name() string {
	return "deadline_refresher"
}

func (h *DeadlineRefresher) Handle(ctx context.Context, change feed.Change) error {
	if !change.IsUpdate() {
		return nil
	}
	if change.Before.Status == booking.StatusPaid || change.After.Status != booking.StatusPaid {
		return nil
	}

	deadline := h.clock.Now().Add(booking.AcceptWindow)
	if err := h.store.Merge(ctx, change.BookingID, booking.DeadlinePatch(deadline)); err != nil {
		return errs.Wrap(err, "deadline refresh merge failed")
	}

	h.logger.Info("acceptance deadline refreshed",
		"booking_id", change.BookingID,
		"accept_deadline", deadline,
	)
	return nil
}
