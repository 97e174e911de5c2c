package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"hotel-concierge-agent/internal/conversation"
	"hotel-concierge-agent/internal/model"
)

func (s *Store) GetOrCreate(ctx context.Context, hotelID uuid.UUID, guestPhone string, platform model.Platform) (*model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if c := s.activeByPhoneLocked(guestPhone); c != nil {
		if now.Sub(c.LastMessageAt) < s.timeout {
			cp := *c
			return &cp, nil
		}
		// Stale session: close it and start over.
		c.Status = model.ConversationResolved
		c.ResolutionType = model.ResolutionAutomated
		s.l.Debugf(ctx, "conversation.memory.GetOrCreate: closed stale conversation %s", c.ID)
	}

	c := &model.Conversation{
		ID:            uuid.New(),
		HotelID:       hotelID,
		GuestPhone:    guestPhone,
		Platform:      platform,
		StartedAt:     now,
		LastMessageAt: now,
		Status:        model.ConversationActive,
	}
	s.conversations[c.ID] = c

	cp := *c
	return &cp, nil
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conversations[id]
	if !ok {
		return nil, conversation.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) List(ctx context.Context) ([]model.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out, nil
}

func (s *Store) AddMessage(ctx context.Context, conversationID uuid.UUID, input conversation.AddMessageInput) (*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok {
		return nil, conversation.ErrNotFound
	}

	m := model.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Role:           input.Role,
		Content:        input.Content,
		Intent:         input.Intent,
		Metadata:       input.Metadata,
		CreatedAt:      time.Now(),
	}
	s.messages[conversationID] = append(s.messages[conversationID], m)
	c.LastMessageAt = m.CreatedAt

	cp := m
	return &cp, nil
}

func (s *Store) GetHistory(ctx context.Context, conversationID uuid.UUID, limit int) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.conversations[conversationID]; !ok {
		return nil, conversation.ErrNotFound
	}

	msgs := s.messages[conversationID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]model.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *Store) LinkBooking(ctx context.Context, conversationID, bookingID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok {
		return conversation.ErrNotFound
	}
	c.BookingID = &bookingID
	return nil
}

func (s *Store) Escalate(ctx context.Context, conversationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok {
		return conversation.ErrNotFound
	}
	c.Status = model.ConversationEscalated
	c.ResolutionType = model.ResolutionHumanHandoff

	s.l.Infof(ctx, "conversation.memory.Escalate: conversation %s handed off", conversationID)
	return nil
}

func (s *Store) Resolve(ctx context.Context, conversationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok {
		return conversation.ErrNotFound
	}
	c.Status = model.ConversationResolved
	c.ResolutionType = model.ResolutionAutomated
	return nil
}

func (s *Store) Reset(ctx context.Context, guestPhone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.activeByPhoneLocked(guestPhone); c != nil {
		c.Status = model.ConversationResolved
		c.ResolutionType = model.ResolutionAutomated
	}
	return nil
}

// activeByPhoneLocked returns the guest's active conversation with the most
// recent activity, or nil. Callers hold the lock.
func (s *Store) activeByPhoneLocked(guestPhone string) *model.Conversation {
	var best *model.Conversation
	for _, c := range s.conversations {
		if c.GuestPhone != guestPhone || c.Status != model.ConversationActive {
			continue
		}
		if best == nil || c.LastMessageAt.After(best.LastMessageAt) {
			best = c
		}
	}
	return best
}
