package domain

import "errors"

// Domain errors are returned by handlers and folded into {"error": ...}
// envelopes at the dispatch boundary. They never surface as transport faults.
var (
	ErrFlightNotFound   = errors.New("flight not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAirportNotFound  = errors.New("airport not found")
	ErrNoSeatsAvailable = errors.New("no seats available")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)
