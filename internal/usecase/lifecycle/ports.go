package lifecycle

import (
	"context"
	"time"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
)

// BookingStore is the controller's write side against the document store.
// Merge replaces exactly the fields in the patch and leaves everything else
// untouched; the store applies it atomically per document.
type BookingStore interface {
	Merge(ctx context.Context, id string, patch booking.Patch) error
}

// TutorSnapshot is the read-only slice of a tutor profile the snapshot
// enrichment needs. HourlyRate is a pointer because a profile may exist
// without a published rate.
type TutorSnapshot struct {
	DisplayName string   `json:"displayName"`
	HourlyRate  *float64 `json:"hourlyRate"`
}

// TutorSource looks up a tutor profile. A missing profile is (nil, nil),
// not an error; callers fall back to fields already on the booking.
type TutorSource interface {
	Find(ctx context.Context, tutorID string) (*TutorSnapshot, error)
}

// UserSnapshot carries a student's registered device tokens. The list may
// be empty; students without devices are not an error.
type UserSnapshot struct {
	FCMTokens []string `json:"fcmTokens"`
}

// UserSource looks up a user record. A missing user is (nil, nil).
type UserSource interface {
	Find(ctx context.Context, userID string) (*UserSnapshot, error)
}

// Message is one independently-addressed push notification.
type Message struct {
	Token     string
	Title     string
	Body      string
	Icon      string
	Color     string
	ChannelID string
	Data      map[string]string
}

// SendResult is the per-token outcome of a batch send. Err is nil on
// success. The batch call itself never partially fails; a transport error
// is returned by SendEach instead.
type SendResult struct {
	Token string
	Err   error
}

type Pusher interface {
	SendEach(ctx context.Context, msgs []Message) ([]SendResult, error)
}

// OnceGuard marks a key as consumed exactly once within ttl. Acquire
// returns false when another delivery of the same event already claimed
// the key.
type OnceGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
