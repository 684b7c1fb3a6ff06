package booking

import "time"

// AcceptWindow is how long a tutor has to respond before a pending or paid
// booking is force-cancelled. It restarts when payment is confirmed.
const AcceptWindow = 15 * time.Minute

// Booking is the document image of one tutoring engagement. The json field
// names are the wire contract shared with the client app and the payment
// flow; they must not change. Optional timestamps and the hourly rate are
// pointers so that "absent from the document" and "zero" stay distinct.
type Booking struct {
	StudentID      string     `json:"studentId,omitempty"`
	TutorID        string     `json:"tutorId,omitempty"`
	TutorName      string     `json:"tutorName,omitempty"`
	HourlyRate     *float64   `json:"hourlyRate,omitempty"`
	Subject        string     `json:"subject,omitempty"`
	Minutes        int        `json:"minutes,omitempty"`
	Status         Status     `json:"status,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	AcceptDeadline *time.Time `json:"acceptDeadline,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
}

// Expired reports whether the booking sat unanswered past its acceptance
// deadline. Only pending and paid bookings can expire; once accepted the
// deadline no longer applies.
func (b *Booking) Expired(now time.Time) bool {
	if b.Status != StatusPending && b.Status != StatusPaid {
		return false
	}
	return b.AcceptDeadline != nil && b.AcceptDeadline.Before(now)
}

type CancellationKind int

const (
	// CancellationGeneric covers expiry and any other cancellation path.
	CancellationGeneric CancellationKind = iota
	// CancellationRejection is a tutor declining a booking the student had
	// already paid for.
	CancellationRejection
)

// ClassifyCancellation applies the rejection heuristic: a cancellation is a
// tutor rejection only when the booking was paid beforehand and carries a
// cancelledAt stamp. Everything else (expiry, cancel-while-pending) is
// generic.
func ClassifyCancellation(prior Status, cancelledAt *time.Time) CancellationKind {
	if cancelledAt != nil && prior == StatusPaid {
		return CancellationRejection
	}
	return CancellationGeneric
}
