package memory

import (
	"sync"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/model"
	"hotel-concierge-agent/internal/pms"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// Store is an in-memory PMS backed by seeded fixture data. It stands in for
// a Cloudbeds-like property management system behind the pms.Service
// interface and is safe for concurrent use.
type Store struct {
	l pkgLog.Logger

	mu          sync.RWMutex
	hotel       *model.Hotel
	roomTypes   []model.RoomType
	bookings    map[uuid.UUID]*model.Booking
	requests    map[uuid.UUID]*model.ServiceRequest
	offers      []model.UpsellOffer
	conversions map[uuid.UUID]*model.UpsellConversion

	bookingSeq int // feeds confirmation numbers (PLR-<year>-NNN)
}

// Ensure Store implements pms.Service.
var _ pms.Service = (*Store)(nil)

// New creates a seeded in-memory PMS.
func New(l pkgLog.Logger) *Store {
	s := &Store{
		l:           l,
		bookings:    make(map[uuid.UUID]*model.Booking),
		requests:    make(map[uuid.UUID]*model.ServiceRequest),
		conversions: make(map[uuid.UUID]*model.UpsellConversion),
	}
	s.seed()
	return s
}
