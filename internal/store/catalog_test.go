package store

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func TestEnsureCatalog_GeneratesFiftyFlights(t *testing.T) {
	s := NewStore(WithRand(rand.New(rand.NewSource(1))), WithClock(fixedClock()))

	s.EnsureCatalog()

	assert.Len(t, s.Flights(0), 50)
}

func TestEnsureCatalog_Idempotent(t *testing.T) {
	s := NewStore(WithRand(rand.New(rand.NewSource(1))), WithClock(fixedClock()))

	s.EnsureCatalog()
	first := s.Flights(0)
	s.EnsureCatalog()
	second := s.Flights(0)

	assert.Equal(t, len(first), len(second))
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestEnsureCatalog_FlightInvariants(t *testing.T) {
	s := NewStore(WithRand(rand.New(rand.NewSource(42))), WithClock(fixedClock()))

	s.EnsureCatalog()

	for _, f := range s.Flights(0) {
		assert.NotEqual(t, f.DepartureAirport, f.ArrivalAirport, "flight %s", f.ID)
		assert.Len(t, f.DepartureAirport, 3)
		assert.Len(t, f.ArrivalAirport, 3)

		// Arrival must equal departure plus the stated duration.
		var hours, minutes int
		_, err := fmt.Sscanf(f.Duration, "%dh %dm", &hours, &minutes)
		require.NoError(t, err, "duration %q", f.Duration)
		want := f.DepartureTime.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
		assert.True(t, f.ArrivalTime.Equal(want), "flight %s arrival mismatch", f.ID)

		assert.GreaterOrEqual(t, f.Price, 200.0)
		assert.LessOrEqual(t, f.Price, 2000.0)
		assert.GreaterOrEqual(t, f.AvailableSeats, 5)
		assert.LessOrEqual(t, f.AvailableSeats, 200)

		// Departure snaps to the 15-minute grid inside the 6-22h window.
		assert.Zero(t, f.DepartureTime.Minute()%15, "flight %s minute %d", f.ID, f.DepartureTime.Minute())
		assert.GreaterOrEqual(t, f.DepartureTime.Hour(), 6)
		assert.LessOrEqual(t, f.DepartureTime.Hour(), 22)
	}
}

func TestEnsureCatalog_SequentialIDs(t *testing.T) {
	s := NewStore(WithRand(rand.New(rand.NewSource(7))), WithClock(fixedClock()))

	s.EnsureCatalog()

	flights := s.Flights(0)
	require.Len(t, flights, 50)
	assert.Equal(t, "FL001", flights[0].ID)
	assert.Equal(t, "FL050", flights[49].ID)
}

func TestReferenceData(t *testing.T) {
	s := NewStore()

	assert.Len(t, s.Airports(), 8)
	assert.Len(t, s.Airlines(), 12)

	ap, ok := s.FindAirport("jfk")
	assert.True(t, ok)
	assert.Equal(t, "JFK", ap.Code)
	assert.Equal(t, "New York", ap.City)

	_, ok = s.FindAirport("XXX")
	assert.False(t, ok)
}
