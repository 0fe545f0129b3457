package flightops

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/Domenick1991/flightdesk/internal/domain"
)

// flightStatuses is the vocabulary returned by the flight status resource.
// The pick is intentionally random on every read: there is no persisted
// status field.
var flightStatuses = []string{"on_time", "delayed", "boarding", "departed", "arrived"}

func (s *Service) registerResources(reg *capability.Registry) error {
	resources := []capability.Resource{
		{
			Template:    "flight://status/{flight_id}",
			Description: "Real-time status of a specific flight.",
			Handler:     s.flightStatus,
		},
		{
			Template:    "booking://details/{booking_id}",
			Description: "Detailed information about a specific booking.",
			Handler:     s.bookingDetails,
		},
		{
			Template:    "airport://info/{airport_code}",
			Description: "Detailed information about a specific airport.",
			Handler:     s.airportInfo,
		},
	}
	for _, res := range resources {
		if err := reg.RegisterResource(res); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) flightStatus(ctx context.Context, flightID string) (map[string]any, error) {
	s.store.EnsureCatalog()

	flight, ok := s.store.FindFlight(flightID)
	if !ok {
		return nil, fmt.Errorf("flight %s: %w", flightID, domain.ErrFlightNotFound)
	}

	status := flightStatuses[s.randIntn(len(flightStatuses))]
	result := map[string]any{
		"flight_id":           flight.ID,
		"flight_number":       flight.FlightNumber,
		"airline":             flight.Airline,
		"departure_airport":   flight.DepartureAirport,
		"arrival_airport":     flight.ArrivalAirport,
		"scheduled_departure": flight.DepartureTime.Format(domain.TimeLayout),
		"scheduled_arrival":   flight.ArrivalTime.Format(domain.TimeLayout),
		"status":              status,
		"last_updated":        s.now().Format("2006-01-02 15:04:05"),
	}
	if status == "boarding" || status == "delayed" {
		result["gate"] = fmt.Sprintf("Gate %d", 1+s.randIntn(50))
	}
	return result, nil
}

func (s *Service) bookingDetails(ctx context.Context, bookingID string) (map[string]any, error) {
	booking, ok := s.store.FindBooking(bookingID)
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", bookingID, domain.ErrBookingNotFound)
	}
	flight, ok := s.store.FindFlight(booking.FlightID)
	if !ok {
		return nil, fmt.Errorf("flight for booking %s: %w", bookingID, domain.ErrFlightNotFound)
	}

	return map[string]any{
		"booking_id":      booking.ID,
		"passenger_name":  booking.PassengerName,
		"passenger_email": booking.PassengerEmail,
		"flight_details": map[string]any{
			"id":                flight.ID,
			"airline":           flight.Airline,
			"flight_number":     flight.FlightNumber,
			"departure_airport": flight.DepartureAirport,
			"arrival_airport":   flight.ArrivalAirport,
			"departure_time":    flight.DepartureTime.Format(domain.TimeLayout),
			"arrival_time":      flight.ArrivalTime.Format(domain.TimeLayout),
			"duration":          flight.Duration,
			"aircraft_type":     flight.AircraftType,
		},
		"seat_number":  booking.SeatNumber,
		"total_price":  booking.TotalPrice,
		"status":       string(booking.Status),
		"booking_date": booking.BookingDate.Format("2006-01-02 15:04:05"),
	}, nil
}

func (s *Service) airportInfo(ctx context.Context, airportCode string) (map[string]any, error) {
	airport, ok := s.store.FindAirport(airportCode)
	if !ok {
		return nil, fmt.Errorf("airport %s: %w", airportCode, domain.ErrAirportNotFound)
	}

	timezone := "UTC+0"
	if airport.Country == "USA" {
		timezone = "UTC-5"
	}

	return map[string]any{
		"code":         airport.Code,
		"name":         airport.Name,
		"city":         airport.City,
		"country":      airport.Country,
		"timezone":     timezone,
		"terminals":    1 + s.randIntn(5),
		"runways":      2 + s.randIntn(3),
		"last_updated": s.now().Format("2006-01-02 15:04:05"),
	}, nil
}
