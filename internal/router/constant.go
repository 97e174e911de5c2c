package router

// Log prefixes
const (
	LogPrefixResolve = "internal.router.Resolve"
)

// intentKeywords backs the fallback classifier. Matching is by substring on
// the lowercased message; each hit scores one point for its intent.
var intentKeywords = map[Intent][]string{
	IntentGreeting: {
		"hola", "buenos dias", "buenas tardes", "buenas noches",
		"hey", "hi", "hello", "buen dia", "que tal",
	},
	IntentBookingInfo: {
		"reserva", "check-in", "checkin", "check-out", "checkout",
		"confirmacion", "habitacion", "room", "fecha", "noche",
		"llegada", "salida", "booking", "reservation",
	},
	IntentNewBooking: {
		"reservar", "disponibilidad", "disponible", "precio",
		"cuanto cuesta", "cuanto sale", "tarifa", "cotizar",
		"nueva reserva", "quisiera reservar", "book a room",
	},
	IntentAmenitiesQuery: {
		"wifi", "internet", "desayuno", "breakfast", "piscina", "pileta",
		"pool", "gym", "gimnasio", "parking", "estacionamiento",
		"spa", "sauna",
	},
	IntentServiceRequest: {
		"toalla", "towel", "late checkout", "wake up", "despertar",
		"room service", "almohada", "pillow", "limpieza", "cleaning",
		"necesito", "quiero", "podrian", "pueden",
	},
	IntentFAQGeneral: {
		"aeropuerto", "airport", "taxi", "transfer", "mascota", "pet",
		"lavanderia", "laundry", "caja fuerte", "safe",
		"como llego", "direccion", "donde queda",
	},
}

// Classification prompt sent to the model. The answer must be a bare intent name.
const promptClassifyIntent = `Clasifica el intent del siguiente mensaje de un huesped de hotel.

Los intents posibles son:
- booking_info: preguntas sobre su reserva existente (check-in/out, confirmacion, habitacion, fechas)
- new_booking: quiere hacer una nueva reserva, consultar disponibilidad, precios o tipos de habitacion
- amenities_query: preguntas sobre servicios del hotel (WiFi, desayuno, piscina, gym, parking, spa)
- service_request: pedidos de servicio (toallas extra, late checkout, wake-up call, room service)
- faq_general: preguntas generales (como llegar, mascotas, estacionamiento, lavanderia)
- greeting: saludos (hola, buenos dias, buenas tardes)
- out_of_scope: cualquier cosa que no encaje en los anteriores

Mensaje del huesped: "%s"

Responde UNICAMENTE con el nombre del intent, sin explicacion adicional.`

// Resolver configuration
const (
	classifyMaxTokens = 50
)
