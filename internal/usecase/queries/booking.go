package queries

import (
	"context"
	"time"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
	"github.com/chateudechevrole/tutor-app-yp/internal/pkg/errs"
)

// BookingView is the read model served by the ops API.
type BookingView struct {
	ID             string     `json:"id"`
	StudentID      string     `json:"studentId,omitempty"`
	TutorID        string     `json:"tutorId,omitempty"`
	TutorName      string     `json:"tutorName,omitempty"`
	HourlyRate     *float64   `json:"hourlyRate,omitempty"`
	Subject        string     `json:"subject,omitempty"`
	Minutes        int        `json:"minutes,omitempty"`
	Status         string     `json:"status,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	AcceptDeadline *time.Time `json:"acceptDeadline,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
}

// BookingReadStore is the read side of the document store. Find returns
// (nil, nil) when the document is absent.
type BookingReadStore interface {
	Find(ctx context.Context, id string) (*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id string) (*BookingView, error) {
	b, err := q.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errs.ErrBookingNotFound
	}

	return &BookingView{
		ID:             id,
		StudentID:      b.StudentID,
		TutorID:        b.TutorID,
		TutorName:      b.TutorName,
		HourlyRate:     b.HourlyRate,
		Subject:        b.Subject,
		Minutes:        b.Minutes,
		Status:         b.Status.String(),
		CreatedAt:      b.CreatedAt,
		AcceptDeadline: b.AcceptDeadline,
		CancelledAt:    b.CancelledAt,
	}, nil
}
