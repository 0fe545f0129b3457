package store

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// Store owns all flight and booking records. Every mutation goes through its
// mutex, so a booking against the last seat cannot succeed twice.
type Store struct {
	mu           sync.Mutex
	flights      []*domain.Flight
	flightsByID  map[string]*domain.Flight
	bookings     []*domain.Booking
	bookingsByID map[string]*domain.Booking
	airports     []domain.Airport
	airlines     []string
	rng          *rand.Rand
	now          func() time.Time
}

type Option func(*Store)

// WithRand replaces the randomness source used for catalog generation and
// seat assignment. Tests use a fixed seed to pin outputs.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) {
		s.rng = rng
	}
}

// WithClock replaces the wall clock used for departure offsets and booking
// dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		flightsByID:  make(map[string]*domain.Flight),
		bookingsByID: make(map[string]*domain.Booking),
		airports:     append([]domain.Airport(nil), airports...),
		airlines:     append([]string(nil), airlines...),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddFlight inserts a flight record. Used by the catalog generator and by
// tests that need a catalog with known contents.
func (s *Store) AddFlight(f domain.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addFlightLocked(f)
}

func (s *Store) addFlightLocked(f domain.Flight) {
	cp := f
	s.flights = append(s.flights, &cp)
	s.flightsByID[cp.ID] = &cp
}

func (s *Store) FindFlight(id string) (domain.Flight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flightsByID[id]
	if !ok {
		return domain.Flight{}, false
	}
	return *f, true
}

func (s *Store) FindBooking(id string) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookingsByID[id]
	if !ok {
		return domain.Booking{}, false
	}
	return *b, true
}

// Flights returns a copy of the first limit flights in catalog order.
// limit <= 0 returns the whole catalog.
func (s *Store) Flights(limit int) []domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.flights)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Flight, 0, n)
	for _, f := range s.flights[:n] {
		out = append(out, *f)
	}
	return out
}

// SearchFlights returns flights between the given airport codes whose
// departure date matches date (YYYY-MM-DD) and which still have at least
// passengers seats, sorted ascending by price. Codes are matched
// case-insensitively.
func (s *Store) SearchFlights(departure, arrival, date string, passengers int) []domain.Flight {
	departure = normalizeCode(departure)
	arrival = normalizeCode(arrival)

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := make([]domain.Flight, 0)
	for _, f := range s.flights {
		if f.DepartureAirport != departure || f.ArrivalAirport != arrival {
			continue
		}
		if f.DepartureTime.Format("2006-01-02") != date {
			continue
		}
		if f.AvailableSeats < passengers {
			continue
		}
		matches = append(matches, *f)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Price < matches[j].Price
	})
	return matches
}

// CreateBooking reserves one seat on the flight and records a confirmed
// booking with a price snapshot. The capacity check, seat decrement and
// booking insert form one critical section.
func (s *Store) CreateBooking(flightID, passengerName, passengerEmail string) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flightsByID[flightID]
	if !ok {
		return domain.Booking{}, fmt.Errorf("flight %s: %w", flightID, domain.ErrFlightNotFound)
	}
	if flight.AvailableSeats <= 0 {
		return domain.Booking{}, fmt.Errorf("flight %s: %w", flightID, domain.ErrNoSeatsAvailable)
	}

	booking := &domain.Booking{
		ID:             fmt.Sprintf("BK%04d", len(s.bookings)+1),
		FlightID:       flightID,
		PassengerName:  passengerName,
		PassengerEmail: passengerEmail,
		SeatNumber:     s.seatDesignatorLocked(),
		BookingDate:    s.now(),
		Status:         domain.BookingStatusConfirmed,
		TotalPrice:     flight.Price,
	}
	s.bookings = append(s.bookings, booking)
	s.bookingsByID[booking.ID] = booking
	flight.AvailableSeats--

	return *booking, nil
}

// CancelBooking moves a confirmed booking to cancelled and restores the seat
// on the linked flight. Cancelled bookings stay queryable.
func (s *Store) CancelBooking(bookingID string) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookingsByID[bookingID]
	if !ok {
		return domain.Booking{}, fmt.Errorf("booking %s: %w", bookingID, domain.ErrBookingNotFound)
	}
	if booking.Status == domain.BookingStatusCancelled {
		return domain.Booking{}, fmt.Errorf("booking %s: %w", bookingID, domain.ErrAlreadyCancelled)
	}

	booking.Status = domain.BookingStatusCancelled
	if flight, ok := s.flightsByID[booking.FlightID]; ok {
		flight.AvailableSeats++
	}
	return *booking, nil
}

// DecrementSeats takes one seat off the flight. Booking creation does this
// inside its own critical section; this entry point exists for direct store
// use only.
func (s *Store) DecrementSeats(flightID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flightsByID[flightID]
	if !ok {
		return fmt.Errorf("flight %s: %w", flightID, domain.ErrFlightNotFound)
	}
	if flight.AvailableSeats <= 0 {
		return fmt.Errorf("flight %s: %w", flightID, domain.ErrNoSeatsAvailable)
	}
	flight.AvailableSeats--
	return nil
}

// IncrementSeats restores one seat on the flight.
func (s *Store) IncrementSeats(flightID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flightsByID[flightID]
	if !ok {
		return fmt.Errorf("flight %s: %w", flightID, domain.ErrFlightNotFound)
	}
	flight.AvailableSeats++
	return nil
}

func (s *Store) Airports() []domain.Airport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Airport(nil), s.airports...)
}

func (s *Store) FindAirport(code string) (domain.Airport, bool) {
	code = normalizeCode(code)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ap := range s.airports {
		if ap.Code == code {
			return ap, true
		}
	}
	return domain.Airport{}, false
}

func (s *Store) Airlines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.airlines...)
}

// seatDesignatorLocked produces a synthetic seat like "12C". Seat preference
// from callers is deliberately ignored.
func (s *Store) seatDesignatorLocked() string {
	row := s.rng.Intn(30) + 1
	letter := seatLetters[s.rng.Intn(len(seatLetters))]
	return fmt.Sprintf("%d%c", row, letter)
}

var seatLetters = []byte("ABCDEF")

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
