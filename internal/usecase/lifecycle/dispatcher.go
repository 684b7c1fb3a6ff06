package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/internal/infra/feed"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
)

// NotificationDispatcher tells the student when a tutor accepts or a
// booking is cancelled. Delivery is strictly best-effort and downstream of
// the state machine: every failure in here is logged and swallowed so it
// can never fail or retry the status change that triggered it. A Redis
// once-guard keeps redelivered feed events from re-sending the same
// transition; if the guard itself is unavailable the dispatcher degrades
// to at-least-once rather than dropping the notification.
type NotificationDispatcher struct {
	users    UserSource
	pusher   Pusher
	once     OnceGuard
	dedupTTL time.Duration
	logger   *slog.Logger
}

func NewNotificationDispatcher(users UserSource, pusher Pusher, once OnceGuard, dedupTTL time.Duration, logger *slog.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		users:    users,
		pusher:   pusher,
		once:     once,
		dedupTTL: dedupTTL,
		logger:   logger,
	}
}

func (h *NotificationDispatcher) Name() string {
	return "notification_dispatcher"
}

func (h *NotificationDispatcher) Handle(ctx context.Context, change feed.Change) error {
	if !change.IsUpdate() {
		return nil
	}
	if change.Before.Status == change.After.Status {
		return nil
	}
	status := change.After.Status
	if status != booking.StatusAccepted && status != booking.StatusCancelled {
		return nil
	}

	if err := h.dispatch(ctx, change); err != nil {
		h.logger.Error("booking notification failed",
			"booking_id", change.BookingID,
			"status", status,
			"error", err,
		)
	}
	return nil
}

func (h *NotificationDispatcher) dispatch(ctx context.Context, change feed.Change) error {
	after := change.After

	user, err := h.users.Find(ctx, after.StudentID)
	if err != nil {
		return errs.Wrap(err, "student lookup failed")
	}
	var tokens []string
	if user != nil {
		tokens = user.FCMTokens
	}
	if len(tokens) == 0 {
		h.logger.Warn("no device tokens registered, skipping notification",
			"booking_id", change.BookingID,
			"student_id", after.StudentID,
		)
		return nil
	}

	// Keyed on the full edge, not just the new status: an illegal write
	// that briefly enters accepted (and is later reverted by the guard)
	// must not claim the key the legitimate transition will need.
	key := fmt.Sprintf("notify:%s:%s:%s", change.BookingID, change.Before.Status, after.Status)
	acquired, err := h.once.Acquire(ctx, key, h.dedupTTL)
	if err != nil {
		h.logger.Warn("once-guard unavailable, sending anyway", "key", key, "error", err)
		acquired = true
	}
	if !acquired {
		h.logger.Debug("notification already sent for transition", "key", key)
		return nil
	}

	msgs := buildMessages(change.BookingID, change.Before.Status, after, tokens)
	results, err := h.pusher.SendEach(ctx, msgs)
	if err != nil {
		return errs.Wrap(err, "push batch send failed")
	}

	var successCount, failureCount int
	for _, r := range results {
		if r.Err == nil {
			successCount++
			continue
		}
		failureCount++
		h.logger.Error("push send failed for token",
			"booking_id", change.BookingID,
			"token", r.Token,
			"error", r.Err,
		)
	}

	h.logger.Info("booking notification dispatched",
		"booking_id", change.BookingID,
		"status", after.Status,
		"success", successCount,
		"failure", failureCount,
	)
	return nil
}
