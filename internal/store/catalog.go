package store

import (
	"fmt"
	"math"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// catalogSize is the number of flights generated on first use.
const catalogSize = 50

// Static reference data, loaded once and immutable for the process lifetime.
var airports = []domain.Airport{
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA"},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA"},
	{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "UK"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
}

var airlines = []string{
	"American Airlines", "Delta Air Lines", "United Airlines", "Southwest Airlines",
	"British Airways", "Air France", "Lufthansa", "Emirates", "Singapore Airlines",
	"Japan Airlines", "Qantas", "Turkish Airlines",
}

var (
	flightNumberPrefixes = []string{"AA", "DL", "UA", "BA", "AF"}
	aircraftTypes        = []string{"Boeing 737", "Airbus A320", "Boeing 777", "Airbus A350"}
	departureMinutes     = []int{0, 15, 30, 45}
)

// EnsureCatalog populates the flight list with generated flights if and only
// if it is currently empty. Callers may race on first use; the store mutex is
// the one-time guard.
func (s *Store) EnsureCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.flights) > 0 {
		return
	}

	base := s.now().AddDate(0, 0, 1)
	for i := 0; i < catalogSize; i++ {
		s.addFlightLocked(s.generateFlightLocked(i+1, base))
	}
}

func (s *Store) generateFlightLocked(seq int, base time.Time) domain.Flight {
	departure := s.airports[s.rng.Intn(len(s.airports))]
	arrival := departure
	for arrival.Code == departure.Code {
		arrival = s.airports[s.rng.Intn(len(s.airports))]
	}

	departureTime := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location()).
		AddDate(0, 0, s.rng.Intn(31)).
		Add(time.Duration(6+s.rng.Intn(17)) * time.Hour).
		Add(time.Duration(departureMinutes[s.rng.Intn(len(departureMinutes))]) * time.Minute)

	durationHours := 1 + s.rng.Intn(12)
	extraMinutes := s.rng.Intn(60)

	return domain.Flight{
		ID:               fmt.Sprintf("FL%03d", seq),
		Airline:          s.airlines[s.rng.Intn(len(s.airlines))],
		FlightNumber:     fmt.Sprintf("%s%d", flightNumberPrefixes[s.rng.Intn(len(flightNumberPrefixes))], 100+s.rng.Intn(9900)),
		DepartureAirport: departure.Code,
		ArrivalAirport:   arrival.Code,
		DepartureTime:    departureTime,
		ArrivalTime:      departureTime.Add(time.Duration(durationHours)*time.Hour + time.Duration(extraMinutes)*time.Minute),
		Duration:         fmt.Sprintf("%dh %dm", durationHours, extraMinutes),
		Price:            math.Round((200+s.rng.Float64()*1800)*100) / 100,
		AvailableSeats:   5 + s.rng.Intn(196),
		AircraftType:     aircraftTypes[s.rng.Intn(len(aircraftTypes))],
	}
}
