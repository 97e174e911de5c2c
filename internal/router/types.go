package router

// Intent represents the guest's intention, as a closed set.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentBookingInfo    Intent = "booking_info"
	IntentNewBooking     Intent = "new_booking"
	IntentAmenitiesQuery Intent = "amenities_query"
	IntentServiceRequest Intent = "service_request"
	IntentFAQGeneral     Intent = "faq_general"
	IntentOutOfScope     Intent = "out_of_scope"
)

// Intents lists every intent in declaration order. The order is load-bearing:
// the keyword classifier breaks score ties by picking the first-declared
// intent, and the orchestrator checks its dispatch table against this list.
var Intents = []Intent{
	IntentGreeting,
	IntentBookingInfo,
	IntentNewBooking,
	IntentAmenitiesQuery,
	IntentServiceRequest,
	IntentFAQGeneral,
	IntentOutOfScope,
}

// Valid reports whether i is a member of the closed intent set.
func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// Source tells which tier of the resolver produced the intent.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Resolution is the outcome of intent resolution for one message.
type Resolution struct {
	Intent Intent
	Source Source
	Raw    string // raw model answer, empty on the fallback path
}
