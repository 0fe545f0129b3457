package flightops

import (
	"context"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightStatus(t *testing.T) {
	svc := newTestService(t, []domain.Flight{seededFlight("FL001", 450.00, 10)})

	result, err := svc.flightStatus(context.Background(), "FL001")
	require.NoError(t, err)

	assert.Equal(t, "FL001", result["flight_id"])
	assert.Equal(t, "BA178", result["flight_number"])
	assert.Equal(t, "2024-02-15 09:30", result["scheduled_departure"])
	assert.Equal(t, "2024-02-15 16:30", result["scheduled_arrival"])
	assert.Equal(t, "2024-02-01 12:00:00", result["last_updated"])

	status := result["status"].(string)
	assert.Contains(t, flightStatuses, status)
	gate, hasGate := result["gate"]
	if status == "boarding" || status == "delayed" {
		assert.Regexp(t, `^Gate ([1-9]|[1-4][0-9]|50)$`, gate)
	} else {
		assert.False(t, hasGate, "gate only populated for boarding/delayed")
	}
}

func TestFlightStatus_NotFound(t *testing.T) {
	svc := newTestService(t, []domain.Flight{seededFlight("FL001", 450.00, 10)})

	_, err := svc.flightStatus(context.Background(), "FL999")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestBookingDetails(t *testing.T) {
	svc := newTestService(t, []domain.Flight{seededFlight("FL001", 450.00, 10)})

	booked, err := svc.bookFlight(context.Background(), map[string]any{
		"flight_id":       "FL001",
		"passenger_name":  "John Doe",
		"passenger_email": "john@example.com",
	})
	require.NoError(t, err)

	result, err := svc.bookingDetails(context.Background(), booked["booking_id"].(string))
	require.NoError(t, err)

	assert.Equal(t, "BK0001", result["booking_id"])
	assert.Equal(t, "john@example.com", result["passenger_email"])
	assert.Equal(t, "confirmed", result["status"])
	details := result["flight_details"].(map[string]any)
	assert.Equal(t, "Boeing 777", details["aircraft_type"])
}

func TestBookingDetails_NotFound(t *testing.T) {
	svc := newTestService(t, []domain.Flight{seededFlight("FL001", 450.00, 10)})

	_, err := svc.bookingDetails(context.Background(), "BK9999")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestAirportInfo(t *testing.T) {
	svc := newTestService(t, []domain.Flight{seededFlight("FL001", 450.00, 10)})

	result, err := svc.airportInfo(context.Background(), "jfk")
	require.NoError(t, err)

	assert.Equal(t, "JFK", result["code"])
	assert.Equal(t, "New York", result["city"])
	assert.Equal(t, "UTC-5", result["timezone"])

	terminals := result["terminals"].(int)
	assert.GreaterOrEqual(t, terminals, 1)
	assert.LessOrEqual(t, terminals, 5)
	runways := result["runways"].(int)
	assert.GreaterOrEqual(t, runways, 2)
	assert.LessOrEqual(t, runways, 4)

	lhr, err := svc.airportInfo(context.Background(), "LHR")
	require.NoError(t, err)
	assert.Equal(t, "UTC+0", lhr["timezone"])
}

func TestAirportInfo_NotFound(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.airportInfo(context.Background(), "XXX")
	assert.ErrorIs(t, err, domain.ErrAirportNotFound)
}

func TestResourceRandomness_PinnedBySeed(t *testing.T) {
	first := newTestService(t, []domain.Flight{seededFlight("FL001", 450.00, 10)})
	second := newTestService(t, []domain.Flight{seededFlight("FL001", 450.00, 10)})

	a, err := first.flightStatus(context.Background(), "FL001")
	require.NoError(t, err)
	b, err := second.flightStatus(context.Background(), "FL001")
	require.NoError(t, err)

	assert.Equal(t, a["status"], b["status"], "same seed, same draw")
}
