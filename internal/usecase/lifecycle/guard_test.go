//go:build unit

package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/clock"
	"github.com/chateudechevrole/tutor-app-yp/internal/usecase/lifecycle"
	"github.com/chateudechevrole/tutor-app-yp/tests/common/builder"
	lifecyclemock "github.com/chateudechevrole/tutor-app-yp/tests/mock/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var allStatuses = []booking.Status{
	booking.StatusPending,
	booking.StatusPaid,
	booking.StatusAccepted,
	booking.StatusInProgress,
	booking.StatusCompleted,
	booking.StatusCancelled,
}

func newGuard(t *testing.T) (*lifecycle.TransitionGuard, *lifecyclemock.MockBookingStore, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := lifecyclemock.NewMockBookingStore(ctrl)
	clk := clock.NewMockClock(builder.BaseTime)
	return lifecycle.NewTransitionGuard(store, clk, newTestLogger()), store, clk
}

// future keeps the booking inside its acceptance window so only the
// validity check is exercised.
func future() time.Time {
	return builder.BaseTime.Add(booking.AcceptWindow)
}

func TestTransitionGuard_AllowedEdgesPreserved(t *testing.T) {
	allowed := []struct{ from, to booking.Status }{
		{booking.StatusPending, booking.StatusPaid},
		{booking.StatusPending, booking.StatusCancelled},
		{booking.StatusPaid, booking.StatusAccepted},
		{booking.StatusPaid, booking.StatusCancelled},
		{booking.StatusAccepted, booking.StatusInProgress},
		{booking.StatusAccepted, booking.StatusCancelled},
		{booking.StatusInProgress, booking.StatusCompleted},
		{booking.StatusInProgress, booking.StatusCancelled},
	}

	for _, edge := range allowed {
		t.Run(string(edge.from)+"_to_"+string(edge.to), func(t *testing.T) {
			guard, _, _ := newGuard(t) // no store expectations: the write must stand

			before := builder.NewBookingBuilder().WithStatus(edge.from).WithAcceptDeadline(future()).Build()
			after := builder.NewBookingBuilder().WithStatus(edge.to).WithAcceptDeadline(future()).Build()

			err := guard.Handle(context.Background(), builder.UpdateChange("bk-1", before, after))
			require.NoError(t, err)
		})
	}
}

func TestTransitionGuard_IllegalEdgesReverted(t *testing.T) {
	isAllowed := func(from, to booking.Status) bool {
		return from.CanTransition(to)
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if from == to || isAllowed(from, to) {
				continue
			}
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				guard, store, _ := newGuard(t)

				before := builder.NewBookingBuilder().WithStatus(from).WithAcceptDeadline(future()).Build()
				after := builder.NewBookingBuilder().WithStatus(to).WithAcceptDeadline(future()).Build()

				store.EXPECT().
					Merge(gomock.Any(), "bk-1", booking.RevertStatusPatch(from)).
					Return(nil)

				err := guard.Handle(context.Background(), builder.UpdateChange("bk-1", before, after))
				require.NoError(t, err)
			})
		}
	}
}

func TestTransitionGuard_SameStatusAlwaysLegal(t *testing.T) {
	for _, s := range allStatuses {
		t.Run(string(s), func(t *testing.T) {
			guard, _, _ := newGuard(t)

			before := builder.NewBookingBuilder().WithStatus(s).WithAcceptDeadline(future()).Build()
			after := builder.NewBookingBuilder().WithStatus(s).WithAcceptDeadline(future()).WithSubject("Physics").Build()

			err := guard.Handle(context.Background(), builder.UpdateChange("bk-1", before, after))
			require.NoError(t, err)
		})
	}
}

func TestTransitionGuard_ExpiryForcesCancellation(t *testing.T) {
	past := builder.BaseTime.Add(-time.Minute)

	t.Run("pending booking past deadline is cancelled", func(t *testing.T) {
		guard, store, _ := newGuard(t)

		before := builder.NewBookingBuilder().WithStatus(booking.StatusPending).WithAcceptDeadline(past).Build()
		after := builder.NewBookingBuilder().WithStatus(booking.StatusPending).WithAcceptDeadline(past).Build()

		store.EXPECT().
			Merge(gomock.Any(), "bk-1", booking.ForceCancelPatch(builder.BaseTime)).
			Return(nil)

		err := guard.Handle(context.Background(), builder.UpdateChange("bk-1", before, after))
		require.NoError(t, err)
	})

	t.Run("paid booking past deadline is cancelled", func(t *testing.T) {
		guard, store, _ := newGuard(t)

		// The window keeps running while the booking is paid; a rewrite
		// after the deadline still ends in cancellation.
		before := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).WithAcceptDeadline(past).Build()
		after := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).WithAcceptDeadline(past).Build()

		store.EXPECT().
			Merge(gomock.Any(), "bk-1", booking.ForceCancelPatch(builder.BaseTime)).
			Return(nil)

		err := guard.Handle(context.Background(), builder.UpdateChange("bk-1", before, after))
		require.NoError(t, err)
	})

	t.Run("expiry preempts a legal transition", func(t *testing.T) {
		guard, store, _ := newGuard(t)

		// pending -> paid is an allowed edge, but the deadline already
		// passed: only the cancellation merge runs, not the transition.
		before := builder.NewBookingBuilder().WithStatus(booking.StatusPending).WithAcceptDeadline(past).Build()
		after := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).WithAcceptDeadline(past).Build()

		store.EXPECT().
			Merge(gomock.Any(), "bk-1", booking.ForceCancelPatch(builder.BaseTime)).
			Return(nil)

		err := guard.Handle(context.Background(), builder.UpdateChange("bk-1", before, after))
		require.NoError(t, err)
	})

	t.Run("accepted booking never expires", func(t *testing.T) {
		guard, _, _ := newGuard(t)

		before := builder.NewBookingBuilder().WithStatus(booking.StatusAccepted).WithAcceptDeadline(past).Build()
		after := builder.NewBookingBuilder().WithStatus(booking.StatusAccepted).WithAcceptDeadline(past).Build()

		err := guard.Handle(context.Background(), builder.UpdateChange("bk-1", before, after))
		require.NoError(t, err)
	})
}

func TestTransitionGuard_IgnoresNonUpdates(t *testing.T) {
	guard, _, _ := newGuard(t)

	created := builder.NewBookingBuilder().Build()
	assert.NoError(t, guard.Handle(context.Background(), builder.CreateChange("bk-1", created)))
	assert.NoError(t, guard.Handle(context.Background(), builder.UpdateChange("bk-1", created, nil)))
}

func TestTransitionGuard_MergeFailureSurfacesForRedelivery(t *testing.T) {
	guard, store, _ := newGuard(t)

	before := builder.NewBookingBuilder().WithStatus(booking.StatusPending).WithAcceptDeadline(future()).Build()
	after := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).WithAcceptDeadline(future()).Build()

	store.EXPECT().
		Merge(gomock.Any(), "bk-1", gomock.Any()).
		Return(assert.AnError)

	err := guard.Handle(context.Background(), builder.UpdateChange("bk-1", before, after))
	require.Error(t, err)
}
