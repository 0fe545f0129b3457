package email

import (
	"context"
	"log"

	"github.com/Domenick1991/flightdesk/internal/kafka"
)

// Sender is the notification backend consumed by the worker. The demo server
// has no real mail integration, so it logs what would be sent.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("send email to %s: booking %s on flight %s is %s (seat %s, total %.2f)",
		event.PassengerEmail, event.BookingID, event.FlightID, event.Status, event.SeatNumber, event.TotalPrice)
	return nil
}
