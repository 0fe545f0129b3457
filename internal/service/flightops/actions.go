package flightops

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/Domenick1991/flightdesk/internal/domain"
)

// searchResultLimit caps the flight list returned by search_flights;
// results_count still reports the full match count.
const searchResultLimit = 10

func (s *Service) registerActions(reg *capability.Registry) error {
	actions := []capability.Action{
		{
			Name:        "search_flights",
			Description: "Search for available flights between airports on a specific date.",
			Schema: objectSchema(map[string]any{
				"departure_airport": stringProp("IATA airport code for departure (e.g. JFK, LAX)"),
				"arrival_airport":   stringProp("IATA airport code for arrival (e.g. LHR, CDG)"),
				"departure_date":    stringProp("Departure date in YYYY-MM-DD format"),
				"passengers":        integerProp("Number of passengers (default: 1)"),
				"return_date":       stringProp("Return date for round-trip flights (optional)"),
			}, []string{"departure_airport", "arrival_airport", "departure_date"}),
			Handler: s.searchFlights,
		},
		{
			Name:        "book_flight",
			Description: "Book a specific flight for a passenger.",
			Schema: objectSchema(map[string]any{
				"flight_id":       stringProp("ID of the flight to book"),
				"passenger_name":  stringProp("Full name of the passenger"),
				"passenger_email": stringProp("Email address of the passenger"),
				"seat_preference": stringProp("Seat preference (window, aisle, middle); accepted but not used for assignment"),
			}, []string{"flight_id", "passenger_name", "passenger_email"}),
			Handler: s.bookFlight,
		},
		{
			Name:        "cancel_booking",
			Description: "Cancel a flight booking and release its seat.",
			Schema: objectSchema(map[string]any{
				"booking_id": stringProp("ID of the booking to cancel"),
			}, []string{"booking_id"}),
			Handler: s.cancelBooking,
		},
		{
			Name:        "list_airports",
			Description: "List all available airports with their codes and locations.",
			Schema:      objectSchema(map[string]any{}, nil),
			Handler:     s.listAirports,
		},
		{
			Name:        "list_airlines",
			Description: "List all available airlines.",
			Schema:      objectSchema(map[string]any{}, nil),
			Handler:     s.listAirlines,
		},
	}
	for _, a := range actions {
		if err := reg.RegisterAction(a); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) searchFlights(ctx context.Context, args map[string]any) (map[string]any, error) {
	departure, err := stringArg(args, "departure_airport", true)
	if err != nil {
		return nil, err
	}
	arrival, err := stringArg(args, "arrival_airport", true)
	if err != nil {
		return nil, err
	}
	date, err := stringArg(args, "departure_date", true)
	if err != nil {
		return nil, err
	}
	passengers, err := intArg(args, "passengers", 1)
	if err != nil {
		return nil, err
	}
	returnDate, _ := stringArg(args, "return_date", false)

	departure = strings.ToUpper(strings.TrimSpace(departure))
	arrival = strings.ToUpper(strings.TrimSpace(arrival))

	s.store.EnsureCatalog()

	key := fmt.Sprintf("%s:%s:%s:%d", departure, arrival, date, passengers)
	matches := s.cachedSearch(ctx, key)
	if matches == nil {
		matches = s.store.SearchFlights(departure, arrival, date, passengers)
		if s.cache != nil {
			_ = s.cache.SetSearch(ctx, key, matches)
		}
	}

	limited := matches
	if len(limited) > searchResultLimit {
		limited = limited[:searchResultLimit]
	}
	flights := make([]map[string]any, 0, len(limited))
	for _, f := range limited {
		flights = append(flights, flightPayload(f))
	}

	criteria := map[string]any{
		"departure_airport": departure,
		"arrival_airport":   arrival,
		"departure_date":    date,
		"passengers":        passengers,
	}
	if returnDate != "" {
		criteria["return_date"] = returnDate
	}

	return map[string]any{
		"search_criteria": criteria,
		"results_count":   len(matches),
		"flights":         flights,
	}, nil
}

func (s *Service) cachedSearch(ctx context.Context, key string) []domain.Flight {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.GetSearch(ctx, key)
	if err != nil {
		return nil
	}
	return cached
}

func (s *Service) bookFlight(ctx context.Context, args map[string]any) (map[string]any, error) {
	flightID, err := stringArg(args, "flight_id", true)
	if err != nil {
		return nil, err
	}
	name, err := stringArg(args, "passenger_name", true)
	if err != nil {
		return nil, err
	}
	email, err := stringArg(args, "passenger_email", true)
	if err != nil {
		return nil, err
	}
	// seat_preference is accepted but does not influence assignment.
	_, _ = stringArg(args, "seat_preference", false)

	s.store.EnsureCatalog()

	booking, err := s.store.CreateBooking(flightID, name, email)
	if err != nil {
		return nil, err
	}
	flight, _ := s.store.FindFlight(flightID)
	s.publish(ctx, "booking_created", booking)

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
		},
		"seat_number":  booking.SeatNumber,
		"total_price":  booking.TotalPrice,
		"status":       string(booking.Status),
		"booking_date": booking.BookingDate.Format("2006-01-02 15:04:05"),
	}, nil
}

func (s *Service) cancelBooking(ctx context.Context, args map[string]any) (map[string]any, error) {
	bookingID, err := stringArg(args, "booking_id", true)
	if err != nil {
		return nil, err
	}

	booking, err := s.store.CancelBooking(bookingID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_cancelled", booking)

	return map[string]any{
		"booking_id":        booking.ID,
		"passenger_name":    booking.PassengerName,
		"refund_amount":     booking.TotalPrice,
		"cancellation_date": s.now().Format("2006-01-02 15:04:05"),
		"status":            string(booking.Status),
	}, nil
}

func (s *Service) listAirports(ctx context.Context, args map[string]any) (map[string]any, error) {
	airports := s.store.Airports()
	return map[string]any{
		"airports":    airports,
		"total_count": len(airports),
	}, nil
}

func (s *Service) listAirlines(ctx context.Context, args map[string]any) (map[string]any, error) {
	airlines := s.store.Airlines()
	return map[string]any{
		"airlines":    airlines,
		"total_count": len(airlines),
	}, nil
}

func flightPayload(f domain.Flight) map[string]any {
	return map[string]any{
		"id":                f.ID,
		"airline":           f.Airline,
		"flight_number":     f.FlightNumber,
		"departure_airport": f.DepartureAirport,
		"arrival_airport":   f.ArrivalAirport,
		"departure_time":    f.DepartureTime.Format(domain.TimeLayout),
		"arrival_time":      f.ArrivalTime.Format(domain.TimeLayout),
		"duration":          f.Duration,
		"price":             f.Price,
		"available_seats":   f.AvailableSeats,
		"aircraft_type":     f.AircraftType,
	}
}
