// Package flightops registers the flight-booking capabilities (actions,
// resources and prompt templates) against the entity store.
package flightops

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/store"
)

// SearchCache keeps recent search results. Implementations may lose entries
// at any time; a miss just falls through to the store.
type SearchCache interface {
	GetSearch(ctx context.Context, key string) ([]domain.Flight, error)
	SetSearch(ctx context.Context, key string, flights []domain.Flight) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Service struct {
	store              *store.Store
	cache              SearchCache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time

	// rng feeds the deliberately non-deterministic resource fields
	// (flight status, gates, airport terminal counts).
	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Service)

func WithSearchCache(cache SearchCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, bookingTopic string) Option {
	return func(s *Service) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) Option {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register wires every capability into the registry. Called once at startup.
func (s *Service) Register(reg *capability.Registry) error {
	for _, register := range []func(*capability.Registry) error{
		s.registerActions,
		s.registerResources,
		s.registerPrompts,
	} {
		if err := register(reg); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) randIntn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Service) publish(ctx context.Context, eventType string, booking domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		FlightID:       booking.FlightID,
		PassengerEmail: booking.PassengerEmail,
		SeatNumber:     booking.SeatNumber,
		Status:         string(booking.Status),
		TotalPrice:     booking.TotalPrice,
		OccurredAt:     s.now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, booking.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, booking.ID, err)
		}
	}
}
