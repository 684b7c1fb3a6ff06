package lifecycle

import (
	"fmt"

	"github.com/chateudechevrole/tutor-app-yp/internal/domain/booking"
)

const (
	notificationType = "booking_status_change"
	channelBookings  = "bookings"

	colorAccepted  = "#4CAF50"
	colorCancelled = "#FF9800"
)

type notificationContent struct {
	Title string
	Body  string
	Icon  string
	Color string
}

// buildContent derives the human-readable notification from the new status
// and, for cancellations, the rejection heuristic. Deterministic: same
// transition, same message.
func buildContent(prior booking.Status, b *booking.Booking) notificationContent {
	tutorName := b.TutorName
	if tutorName == "" {
		tutorName = "A tutor"
	}
	subject := b.Subject
	if subject == "" {
		subject = "your booking"
	}

	switch b.Status {
	case booking.StatusAccepted:
		return notificationContent{
			Title: "Booking Accepted!",
			Body:  fmt.Sprintf("%s has accepted your %s booking.", tutorName, subject),
			Icon:  "accepted",
			Color: colorAccepted,
		}
	case booking.StatusCancelled:
		if booking.ClassifyCancellation(prior, b.CancelledAt) == booking.CancellationRejection {
			return notificationContent{
				Title: "Booking Declined",
				Body:  fmt.Sprintf("%s has declined your %s booking.", tutorName, subject),
				Icon:  "declined",
				Color: colorCancelled,
			}
		}
		return notificationContent{
			Title: "Booking Cancelled",
			Body:  fmt.Sprintf("Your booking with %s was cancelled.", tutorName),
			Icon:  "cancelled",
			Color: colorCancelled,
		}
	}
	return notificationContent{}
}

// buildMessages fans the content out: one message per device token, each
// carrying the structured data payload the client app routes on.
func buildMessages(bookingID string, prior booking.Status, b *booking.Booking, tokens []string) []Message {
	content := buildContent(prior, b)

	tutorName := b.TutorName
	if tutorName == "" {
		tutorName = "A tutor"
	}
	subject := b.Subject
	if subject == "" {
		subject = "your booking"
	}

	msgs := make([]Message, len(tokens))
	for i, token := range tokens {
		msgs[i] = Message{
			Token:     token,
			Title:     content.Title,
			Body:      content.Body,
			Icon:      content.Icon,
			Color:     content.Color,
			ChannelID: channelBookings,
			Data: map[string]string{
				"type":      notificationType,
				"bookingId": bookingID,
				"status":    b.Status.String(),
				"tutorName": tutorName,
				"subject":   subject,
			},
		}
	}
	return msgs
}
