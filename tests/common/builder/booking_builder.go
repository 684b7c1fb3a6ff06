package builder

import (
	"time"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/internal/infra/feed"
)

// BaseTime is the reference instant shared by lifecycle tests; deadlines
// and cancellation stamps are offsets from it.
var BaseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	b booking.Booking
}

func NewBookingBuilder() *BookingBuilder {
	rate := 45.0
	createdAt := BaseTime.Add(-time.Hour)
	deadline := BaseTime.Add(booking.AcceptWindow)
	return &BookingBuilder{
		b: booking.Booking{
			StudentID:      "student-1",
			TutorID:        "tutor-1",
			TutorName:      "Aiko Tanaka",
			HourlyRate:     &rate,
			Subject:        "Mathematics",
			Minutes:        60,
			Status:         booking.StatusPending,
			CreatedAt:      &createdAt,
			AcceptDeadline: &deadline,
		},
	}
}

func (bb *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	bb.b.Status = s
	return bb
}

func (bb *BookingBuilder) WithTutorName(name string) *BookingBuilder {
	bb.b.TutorName = name
	return bb
}

func (bb *BookingBuilder) WithSubject(subject string) *BookingBuilder {
	bb.b.Subject = subject
	return bb
}

func (bb *BookingBuilder) WithHourlyRate(rate float64) *BookingBuilder {
	bb.b.HourlyRate = &rate
	return bb
}

func (bb *BookingBuilder) WithoutHourlyRate() *BookingBuilder {
	bb.b.HourlyRate = nil
	return bb
}

func (bb *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	bb.b.CreatedAt = &t
	return bb
}

func (bb *BookingBuilder) WithoutCreatedAt() *BookingBuilder {
	bb.b.CreatedAt = nil
	return bb
}

func (bb *BookingBuilder) WithAcceptDeadline(t time.Time) *BookingBuilder {
	bb.b.AcceptDeadline = &t
	return bb
}

func (bb *BookingBuilder) WithoutAcceptDeadline() *BookingBuilder {
	bb.b.AcceptDeadline = nil
	return bb
}

func (bb *BookingBuilder) WithCancelledAt(t time.Time) *BookingBuilder {
	bb.b.CancelledAt = &t
	return bb
}

func (bb *BookingBuilder) Build() *booking.Booking {
	copied := bb.b
	return &copied
}

// CreateChange is a creation event: no before image.
func CreateChange(bookingID string, after *booking.Booking) feed.Change {
	return feed.Change{BookingID: bookingID, After: after}
}

// UpdateChange is an update event carrying both images.
func UpdateChange(bookingID string, before, after *booking.Booking) feed.Change {
	return feed.Change{BookingID: bookingID, Before: before, After: after}
}
