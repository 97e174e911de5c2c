package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/conversation"
	"hotel-concierge-agent/internal/model"
	pkgLog "hotel-concierge-agent/pkg/log"
)

// DefaultTimeout is how long a conversation may sit idle before the next
// guest message starts a fresh one.
const DefaultTimeout = 2 * time.Hour

// Store is an in-memory conversation store.
type Store struct {
	l       pkgLog.Logger
	timeout time.Duration

	mu            sync.RWMutex
	conversations map[uuid.UUID]*model.Conversation
	messages      map[uuid.UUID][]model.Message
}

// Ensure Store implements conversation.Store.
var _ conversation.Store = (*Store)(nil)

// New creates an in-memory conversation store. timeout <= 0 falls back to
// DefaultTimeout.
func New(l pkgLog.Logger, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Store{
		l:             l,
		timeout:       timeout,
		conversations: make(map[uuid.UUID]*model.Conversation),
		messages:      make(map[uuid.UUID][]model.Message),
	}
}
