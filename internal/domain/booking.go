package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID             string        `json:"id"`
	FlightID       string        `json:"flight_id"`
	PassengerName  string        `json:"passenger_name"`
	PassengerEmail string        `json:"passenger_email"`
	SeatNumber     string        `json:"seat_number"`
	BookingDate    time.Time     `json:"booking_date"`
	Status         BookingStatus `json:"status"`
	TotalPrice     float64       `json:"total_price"`
}
