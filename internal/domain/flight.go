package domain

import "time"

// TimeLayout is the minute-precision format used for schedule fields in
// capability payloads.
const TimeLayout = "2006-01-02 15:04"

type Flight struct {
	ID               string    `json:"id"`
	Airline          string    `json:"airline"`
	FlightNumber     string    `json:"flight_number"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Duration         string    `json:"duration"`
	Price            float64   `json:"price"`
	AvailableSeats   int       `json:"available_seats"`
	AircraftType     string    `json:"aircraft_type"`
}

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
