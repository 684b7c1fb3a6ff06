//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestExpired(t *testing.T) {
	now := builder.BaseTime

	t.Run("期限切れ判定", func(t *testing.T) {
		past := now.Add(-time.Minute)
		future := now.Add(time.Minute)

		cases := []struct {
			name     string
			status   booking.Status
			deadline *time.Time
			want     bool
		}{
			{"pending・期限超過", booking.StatusPending, &past, true},
			{"paid・期限超過", booking.StatusPaid, &past, true},
			{"pending・期限内", booking.StatusPending, &future, false},
			{"paid・期限内", booking.StatusPaid, &future, false},
			{"accepted・期限超過でも対象外", booking.StatusAccepted, &past, false},
			{"completed・期限超過でも対象外", booking.StatusCompleted, &past, false},
			{"cancelled・期限超過でも対象外", booking.StatusCancelled, &past, false},
			{"pending・期限未設定", booking.StatusPending, nil, false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				bb := builder.NewBookingBuilder().WithStatus(tc.status)
				if tc.deadline != nil {
					bb.WithAcceptDeadline(*tc.deadline)
				} else {
					bb.WithoutAcceptDeadline()
				}
				assert.Equal(t, tc.want, bb.Build().Expired(now))
			})
		}
	})

	t.Run("期限ちょうどは期限内", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithAcceptDeadline(now).Build()
		assert.False(t, b.Expired(now))
	})
}

func TestClassifyCancellation(t *testing.T) {
	stamp := builder.BaseTime

	cases := []struct {
		name        string
		prior       booking.Status
		cancelledAt *time.Time
		want        booking.CancellationKind
	}{
		{"paid・打刻あり→拒否", booking.StatusPaid, &stamp, booking.CancellationRejection},
		{"pending・打刻あり→一般", booking.StatusPending, &stamp, booking.CancellationGeneric},
		{"paid・打刻なし→一般", booking.StatusPaid, nil, booking.CancellationGeneric},
		{"pending・打刻なし→一般", booking.StatusPending, nil, booking.CancellationGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, booking.ClassifyCancellation(tc.prior, tc.cancelledAt))
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	t.Run("表示名の解決順", func(t *testing.T) {
		assert.Equal(t, "Profile Name", booking.ResolveTutorName("Profile Name", "Existing"))
		assert.Equal(t, "Existing", booking.ResolveTutorName("", "Existing"))
		assert.Equal(t, "", booking.ResolveTutorName("", ""))
	})

	t.Run("時給の解決順", func(t *testing.T) {
		profile := 50.0
		existing := 40.0
		zero := 0.0

		assert.Equal(t, 50.0, booking.ResolveHourlyRate(&profile, &existing))
		assert.Equal(t, 40.0, booking.ResolveHourlyRate(nil, &existing))
		assert.Equal(t, 0.0, booking.ResolveHourlyRate(nil, nil))
		// A published zero rate is a value, not an absence.
		assert.Equal(t, 0.0, booking.ResolveHourlyRate(&zero, &existing))
	})
}

func TestPatches(t *testing.T) {
	now := builder.BaseTime

	t.Run("スナップショットパッチ", func(t *testing.T) {
		deadline := now.Add(booking.AcceptWindow)
		patch := booking.SnapshotPatch("Aiko Tanaka", 45.0, now, deadline)

		assert.Equal(t, booking.Patch{
			"tutorName":      "Aiko Tanaka",
			"hourlyRate":     45.0,
			"status":         booking.StatusPending,
			"createdAt":      now,
			"acceptDeadline": deadline,
		}, patch)
	})

	t.Run("強制キャンセルパッチ", func(t *testing.T) {
		patch := booking.ForceCancelPatch(now)
		assert.Equal(t, booking.Patch{
			"status":      booking.StatusCancelled,
			"cancelledAt": now,
		}, patch)
	})

	t.Run("ステータス復元パッチはstatusのみ", func(t *testing.T) {
		patch := booking.RevertStatusPatch(booking.StatusPaid)
		assert.Equal(t, booking.Patch{"status": booking.StatusPaid}, patch)
	})

	t.Run("期限パッチ", func(t *testing.T) {
		deadline := now.Add(booking.AcceptWindow)
		patch := booking.DeadlinePatch(deadline)
		assert.Equal(t, booking.Patch{"acceptDeadline": deadline}, patch)
	})
}
