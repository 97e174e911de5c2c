package memory

import (
	"time"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
	"hotel-concierge-agent/internal/pms"
)

// Fixed IDs so tests and tooling can reference the fixture records.
var (
	HotelID = uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef1234567890")

	BookingJuanID   = uuid.MustParse("b1000001-0000-0000-0000-000000000001")
	BookingMariaID  = uuid.MustParse("b1000002-0000-0000-0000-000000000002")
	BookingCarlosID = uuid.MustParse("b1000003-0000-0000-0000-000000000003")

	OfferDeluxeUpgradeID = uuid.MustParse("d1000001-0000-0000-0000-000000000001")
	OfferSuiteUpgradeID  = uuid.MustParse("d1000002-0000-0000-0000-000000000002")
	OfferBreakfastID     = uuid.MustParse("d1000003-0000-0000-0000-000000000003")
	OfferLateCheckoutID  = uuid.MustParse("d1000004-0000-0000-0000-000000000004")
	OfferSpaID           = uuid.MustParse("d1000005-0000-0000-0000-000000000005")
	OfferEarlyCheckinID  = uuid.MustParse("d1000006-0000-0000-0000-000000000006")
)

// seed populates the store with Hotel Palermo Soho sample data: three room
// types, three bookings and six upsell offers.
func (s *Store) seed() {
	today := time.Now()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(pms.DateLayout)
	}

	s.hotel = &model.Hotel{
		ID:   HotelID,
		Name: "Hotel Palermo Soho",
		Description: "Hotel boutique de 4 estrellas en el corazon de Palermo, Buenos Aires. " +
			"Ubicado a pasos de las mejores tiendas, restaurantes y bares de la zona.",
		Amenities: map[string]interface{}{
			"wifi": map[string]interface{}{
				"available": true, "cost": "free", "password": "palermo2024",
			},
			"breakfast": map[string]interface{}{
				"included": true, "hours": "07:00-11:00", "location": "Restaurant Nivel 1",
			},
			"pool": map[string]interface{}{
				"available": true, "hours": "08:00-20:00", "location": "Rooftop",
			},
			"gym": map[string]interface{}{
				"available": true, "hours": "24/7", "location": "Nivel -1",
			},
			"parking": map[string]interface{}{
				"available": true, "cost": "$15/day", "spots": "limited",
			},
			"spa": map[string]interface{}{
				"available": true, "hours": "10:00-20:00", "location": "Nivel -1", "cost": "Extra charge",
			},
		},
		Policies: map[string]interface{}{
			"checkin":  "15:00",
			"checkout": "11:00",
			"late_checkout": map[string]interface{}{
				"available": true, "cost": "$30", "subject_to": "availability",
			},
			"early_checkin": map[string]interface{}{
				"available": true, "cost": "$20", "subject_to": "availability",
			},
			"cancellation": "Cancelacion gratuita hasta 48 horas antes del arribo",
		},
		FAQ: []model.FAQEntry{
			{
				Question: "Como llego desde el aeropuerto?",
				Answer: "Desde Ezeiza: taxi (~$35 USD, 45min) o transfer privado. " +
					"Desde Aeroparque: taxi (~$15 USD, 20min). " +
					"Tambien ofrecemos servicio de transfer por $40 USD.",
			},
			{
				Question: "Aceptan mascotas?",
				Answer:   "Si, aceptamos mascotas de hasta 10kg con un cargo adicional de $20 USD por noche.",
			},
			{
				Question: "Tienen servicio de lavanderia?",
				Answer: "Si, ofrecemos servicio de lavanderia con entrega en 24hs. " +
					"Podes dejar la ropa en la bolsa de lavanderia del placard.",
			},
			{
				Question: "A que distancia estan las atracciones principales?",
				Answer: "Plaza Serrano: 2 cuadras. MALBA: 10 min caminando. " +
					"Jardin Botanico: 5 min caminando. Bosques de Palermo: 15 min caminando.",
			},
			{
				Question: "Tienen room service?",
				Answer:   "Si, room service disponible de 07:00 a 23:00. Menu disponible en la tablet de la habitacion.",
			},
			{
				Question: "Ofrecen caja de seguridad?",
				Answer: "Si, cada habitacion cuenta con caja de seguridad digital. " +
					"Las instrucciones estan en la carpeta de bienvenida.",
			},
		},
		ContactPhone: "+54 11 4833-1234",
		Address:      "Honduras 4742, Palermo Soho, Buenos Aires, Argentina",
	}

	s.roomTypes = []model.RoomType{
		{
			ID: uuid.MustParse("c1000001-0000-0000-0000-000000000001"), HotelID: HotelID,
			Name:          "Standard",
			Description:   "Habitacion confortable con cama doble, bano privado, TV y escritorio de trabajo.",
			PricePerNight: 120.0, MaxGuests: 2, TotalRooms: 10,
		},
		{
			ID: uuid.MustParse("c1000002-0000-0000-0000-000000000002"), HotelID: HotelID,
			Name:          "Deluxe",
			Description:   "Habitacion superior con cama king, sala de estar, minibar y vista a la ciudad.",
			PricePerNight: 200.0, MaxGuests: 3, TotalRooms: 6,
		},
		{
			ID: uuid.MustParse("c1000003-0000-0000-0000-000000000003"), HotelID: HotelID,
			Name:          "Suite",
			Description:   "Suite premium con sala independiente, jacuzzi privado, terraza y servicio VIP.",
			PricePerNight: 350.0, MaxGuests: 4, TotalRooms: 3,
		},
	}

	seedBookings := []*model.Booking{
		{
			ID: BookingJuanID, ConfirmationNumber: "PLR-2024-001", HotelID: HotelID,
			GuestName: "Juan Perez", GuestPhone: "+5491112345678", GuestEmail: "juan.perez@email.com",
			CheckinDate: day(0), CheckoutDate: day(2), RoomType: "Deluxe", NumGuests: 2,
			SpecialRequests: "Habitacion alta con vista a la calle",
			Status:          model.BookingConfirmed, CreatedAt: today,
		},
		{
			ID: BookingMariaID, ConfirmationNumber: "PLR-2024-002", HotelID: HotelID,
			GuestName: "Maria Gonzalez", GuestPhone: "+5491198765432", GuestEmail: "maria.gonzalez@email.com",
			CheckinDate: day(1), CheckoutDate: day(6), RoomType: "Suite", NumGuests: 1,
			Status: model.BookingConfirmed, CreatedAt: today,
		},
		{
			ID: BookingCarlosID, ConfirmationNumber: "PLR-2024-003", HotelID: HotelID,
			GuestName: "Carlos Rodriguez", GuestPhone: "+5491155551234", GuestEmail: "carlos.r@email.com",
			CheckinDate: day(-1), CheckoutDate: day(1), RoomType: "Standard", NumGuests: 1,
			SpecialRequests: "Almohada extra",
			Status:          model.BookingCheckedIn, CreatedAt: today,
		},
	}
	for _, b := range seedBookings {
		s.bookings[b.ID] = b
	}
	s.bookingSeq = len(seedBookings)

	s.offers = []model.UpsellOffer{
		{
			ID: OfferDeluxeUpgradeID, HotelID: HotelID, Name: "Upgrade a Deluxe",
			Description: "Mejora tu habitacion a Deluxe con cama king, sala de estar, minibar y vista a la ciudad.",
			Price:       80.0, OfferType: "upgrade", IsActive: true,
		},
		{
			ID: OfferSuiteUpgradeID, HotelID: HotelID, Name: "Upgrade a Suite",
			Description: "Mejora tu habitacion a Suite premium con jacuzzi privado, terraza y servicio VIP.",
			Price:       150.0, OfferType: "upgrade", IsActive: true,
		},
		{
			ID: OfferBreakfastID, HotelID: HotelID, Name: "Paquete Desayuno Premium",
			Description: "Desayuno premium con opciones gourmet, jugos naturales y servicio de barista en mesa.",
			Price:       18.0, OfferType: "breakfast", IsActive: true,
		},
		{
			ID: OfferLateCheckoutID, HotelID: HotelID, Name: "Late Checkout",
			Description: "Extiende tu estadia hasta las 14:00hs (sujeto a disponibilidad).",
			Price:       30.0, OfferType: "late_checkout", IsActive: true,
		},
		{
			ID: OfferSpaID, HotelID: HotelID, Name: "Tratamiento Spa Relax",
			Description: "Masaje relajante de 60 minutos en nuestro spa con aromaterapia incluida.",
			Price:       50.0, OfferType: "spa", IsActive: true,
		},
		{
			ID: OfferEarlyCheckinID, HotelID: HotelID, Name: "Early Check-in",
			Description: "Ingreso anticipado a partir de las 12:00hs (sujeto a disponibilidad).",
			Price:       20.0, OfferType: "early_checkin", IsActive: true,
		},
	}
}
