//go:build unit

package booking_test

import (
	"testing"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []booking.Status{
	booking.StatusPending,
	booking.StatusPaid,
	booking.StatusAccepted,
	booking.StatusInProgress,
	booking.StatusCompleted,
	booking.StatusCancelled,
}

func TestStatus(t *testing.T) {
	t.Run("許可された遷移", func(t *testing.T) {
		allowed := map[booking.Status][]booking.Status{
			booking.StatusPending:    {booking.StatusPaid, booking.StatusCancelled},
			booking.StatusPaid:       {booking.StatusAccepted, booking.StatusCancelled},
			booking.StatusAccepted:   {booking.StatusInProgress, booking.StatusCancelled},
			booking.StatusInProgress: {booking.StatusCompleted, booking.StatusCancelled},
			booking.StatusCompleted:  {},
			booking.StatusCancelled:  {},
		}

		for _, from := range allStatuses {
			allowedTo := allowed[from]
			for _, to := range allStatuses {
				want := false
				for _, a := range allowedTo {
					if a == to {
						want = true
					}
				}
				assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("終端状態に出力エッジなし", func(t *testing.T) {
		for _, to := range allStatuses {
			assert.False(t, booking.StatusCompleted.CanTransition(to))
			assert.False(t, booking.StatusCancelled.CanTransition(to))
		}
		assert.True(t, booking.StatusCompleted.Terminal())
		assert.True(t, booking.StatusCancelled.Terminal())
		assert.False(t, booking.StatusPending.Terminal())
		assert.False(t, booking.StatusPaid.Terminal())
	})

	t.Run("未知の状態値から遷移不可", func(t *testing.T) {
		for _, to := range allStatuses {
			assert.False(t, booking.Status("refunded").CanTransition(to))
			assert.False(t, booking.Status("").CanTransition(to))
		}
	})
}
