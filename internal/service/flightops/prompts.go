package flightops

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/capability"
	"github.com/Domenick1991/flightdesk/internal/domain"
)

// suggestionCount is how many catalog flights the suggestions prompt lists.
// The preference text is echoed, not used for filtering.
const suggestionCount = 5

func (s *Service) registerPrompts(reg *capability.Registry) error {
	prompts := []capability.Prompt{
		{
			Name:        "find_flight_suggestions",
			Description: "Generate flight suggestions based on travel preferences.",
			Args: []capability.PromptArg{
				{Name: "travel_preferences", Description: "Description of travel preferences and requirements", Required: true},
			},
			Handler: s.flightSuggestions,
		},
		{
			Name:        "booking_confirmation_template",
			Description: "Generate a booking confirmation template.",
			Args: []capability.PromptArg{
				{Name: "passenger_name", Description: "Name of the passenger", Required: true},
				{Name: "flight_details", Description: "Details of the flight being booked", Required: true},
			},
			Handler: s.bookingConfirmation,
		},
		{
			Name:        "travel_tips",
			Description: "Generate travel tips for a specific destination.",
			Args: []capability.PromptArg{
				{Name: "destination", Description: "Destination city or country", Required: true},
			},
			Handler: s.travelTips,
		},
	}
	for _, p := range prompts {
		if err := reg.RegisterPrompt(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) flightSuggestions(ctx context.Context, args map[string]string) (string, error) {
	preferences := args["travel_preferences"]

	s.store.EnsureCatalog()
	sample := s.store.Flights(suggestionCount)

	var b strings.Builder
	fmt.Fprintf(&b, "Flight Suggestions based on: %s\n\n", preferences)
	b.WriteString("Here are some recommended flights:\n\n")
	for _, f := range sample {
		fmt.Fprintf(&b, "%s %s\n", f.Airline, f.FlightNumber)
		fmt.Fprintf(&b, "   %s -> %s\n", f.DepartureAirport, f.ArrivalAirport)
		fmt.Fprintf(&b, "   Departure: %s\n", f.DepartureTime.Format(domain.TimeLayout))
		fmt.Fprintf(&b, "   Duration: %s\n", f.Duration)
		fmt.Fprintf(&b, "   Price: $%.2f\n", f.Price)
		fmt.Fprintf(&b, "   Available Seats: %d\n\n", f.AvailableSeats)
	}
	b.WriteString("Tips:\n")
	b.WriteString("- Book early for better prices\n")
	b.WriteString("- Consider flexible dates for more options\n")
	b.WriteString("- Check baggage policies before booking\n")
	return b.String(), nil
}

func (s *Service) bookingConfirmation(ctx context.Context, args map[string]string) (string, error) {
	passengerName := args["passenger_name"]
	flightDetails := args["flight_details"]

	return fmt.Sprintf(`BOOKING CONFIRMATION

Dear %s,

Thank you for choosing our flight booking service!

BOOKING DETAILS:
%s

IMPORTANT INFORMATION:
- Please arrive at the airport 2 hours before departure for international flights
- Check-in opens 24 hours before departure
- Bring a valid photo ID and travel documents
- Check baggage restrictions and fees

CUSTOMER SERVICE:
- Phone: 1-800-FLY-BOOK
- Email: support@flightbook.com
- Available 24/7

Safe travels!
The Flight Booking Team
`, passengerName, flightDetails), nil
}

func (s *Service) travelTips(ctx context.Context, args map[string]string) (string, error) {
	destination := args["destination"]

	return fmt.Sprintf(`TRAVEL TIPS FOR %s

PRE-DEPARTURE CHECKLIST:
- Valid passport (6+ months validity)
- Travel insurance
- Local currency
- Power adapters
- Weather-appropriate clothing

ACCOMMODATION:
- Book accommodations in advance
- Check cancellation policies
- Consider location vs. price trade-offs

LOCAL CUSTOMS:
- Research local dining customs
- Learn basic phrases in the local language
- Respect cultural differences

TRANSPORTATION:
- Research local transport options
- Download offline maps
- Keep emergency contacts handy

MONEY MATTERS:
- Notify your bank of travel plans
- Carry multiple payment methods
- Keep receipts for expenses

Stay safe and enjoy your trip to %s!
`, strings.ToUpper(destination), destination), nil
}
